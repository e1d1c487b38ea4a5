// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session persists the signed-in user on the device.
//
// The record is stored as JSON text under a single key in the OS keychain.
// Reading never fails: empty storage, a missing key, malformed data or an
// unavailable backend all mean "no session".
package session

import (
	"encoding/json"
	"fmt"

	"vagas/cli/internal/keychain"
	"vagas/cli/internal/logging"
	"vagas/cli/internal/model"
)

// Storage is the key-value backend the store writes to. *keychain.Manager satisfies it.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Remove(key string) error
}

// Store reads and writes the session record.
type Store struct {
	storage Storage
	key     string
}

// NewStore returns a Store using the default session key.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage, key: keychain.KeySession}
}

// Load returns the persisted user, or nil when there is no usable session.
func (s *Store) Load() *model.User {
	log := logging.With("session")

	data, err := s.storage.Load(s.key)
	if err != nil {
		log.Warn().Err(err).Msg("session storage unreadable; treating as signed out")
		return nil
	}
	if len(data) == 0 {
		log.Debug().Msg("no stored session")
		return nil
	}

	var u *model.User
	if err := json.Unmarshal(data, &u); err != nil {
		log.Debug().Err(err).Int("bytes", len(data)).Msg("stored session is malformed; ignoring")
		return nil
	}
	if !u.Valid() {
		log.Debug().Msg("stored session has no email; ignoring")
		return nil
	}

	log.Debug().Int("user_id", u.ID).Msg("session restored")
	return u
}

// Save replaces the persisted user.
func (s *Store) Save(u model.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.storage.Save(s.key, b); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	logging.With("session").Debug().Int("user_id", u.ID).Msg("session saved")
	return nil
}

// Clear removes the persisted user.
func (s *Store) Clear() error {
	if err := s.storage.Remove(s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	logging.With("session").Debug().Msg("session cleared")
	return nil
}
