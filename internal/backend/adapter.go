// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the vagas users API.
// It defines the API contract the auth controller depends on and an HTTP
// implementation over the /api/usuarios REST collection. Calls are single
// attempts: any failure is returned to the caller immediately.
package backend

import (
	"context"

	"vagas/cli/internal/model"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// ListUsers returns the whole users collection.
	ListUsers(ctx context.Context) ([]model.User, error)
	// CreateUser registers a new account. Success is HTTP 201 only; any other
	// 2xx yields ErrNotCreated.
	CreateUser(ctx context.Context, name, email, password string) (*model.User, error)
	// UpdateUser replaces the account fields of id and returns the stored record.
	// The record is nil when the server acknowledged without returning one.
	UpdateUser(ctx context.Context, id int, name, email, password string) (*model.User, error)
	// GetVersion reports the backend version, "unknown" when not exposed.
	GetVersion(ctx context.Context) (string, error)
}
