// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package devserver is a small users API for local development. It serves the
// same REST contract the CLI talks to, backed by memory or PostgreSQL.
package devserver

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vagas/cli/internal/model"
)

// ErrNotFound is returned when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// Repository stores users. Email uniqueness is not enforced here.
type Repository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
}

// Memory is a Repository kept in process memory.
type Memory struct {
	mu     sync.RWMutex
	users  map[int]model.User
	nextID int
}

// NewMemory returns an empty in-memory repository, optionally seeded.
func NewMemory(seed ...model.User) *Memory {
	m := &Memory{users: make(map[int]model.User), nextID: 1}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = m.nextID
		}
		m.users[u.ID] = u
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
	}
	return m
}

func (m *Memory) List(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) Create(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return u, nil
}

func (m *Memory) Update(ctx context.Context, u model.User) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return model.User{}, ErrNotFound
	}
	m.users[u.ID] = u
	return u, nil
}
