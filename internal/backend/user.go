// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"vagas/cli/internal/model"
)

// userPayload is the request body for create and update.
type userPayload struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// ListUsers calls GET /api/usuarios. The collection is wrapped as {"usuarios": [...]}.
func (h *HTTP) ListUsers(ctx context.Context) ([]model.User, error) {
	resp, err := h.do(ctx, http.MethodGet, h.endpoints.Users, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("list users", resp)
	}

	var out struct {
		Users *[]model.User `json:"usuarios"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("list users: decode response: %w", err)
	}
	if out.Users == nil {
		return nil, errors.New("list users: response has no usuarios field")
	}
	return *out.Users, nil
}

// CreateUser calls POST /api/usuarios. Only 201 Created counts as success.
// The created record is read from "user", "usuario" or the bare body; when the
// server returns nothing usable the submitted fields are echoed back with ID 0.
func (h *HTTP) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	payload := userPayload{Name: name, Email: email, Password: password}
	resp, err := h.do(ctx, http.MethodPost, h.endpoints.Users, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError("create user", resp)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d", ErrNotCreated, resp.StatusCode)
	}

	submitted := &model.User{Name: name, Email: email, Password: password}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return submitted, nil
	}
	if u := decodeUser(b); u.Valid() {
		return u, nil
	}
	return submitted, nil
}

// UpdateUser calls PUT /api/usuarios/{id}. The stored record comes back as {"user": {...}}.
func (h *HTTP) UpdateUser(ctx context.Context, id int, name, email, password string) (*model.User, error) {
	payload := userPayload{Name: name, Email: email, Password: password}
	path := fmt.Sprintf("%s/%d", h.endpoints.Users, id)
	resp, err := h.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError("update user", resp)
	}

	var out struct {
		User *model.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("update user: decode response: %w", err)
	}
	return out.User, nil
}

// decodeUser is liberal in what it accepts: a wrapped or a bare user object.
func decodeUser(b []byte) *model.User {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return nil
	}
	for _, key := range []string{"user", "usuario"} {
		if raw, ok := wrapped[key]; ok {
			var u model.User
			if err := json.Unmarshal(raw, &u); err == nil {
				return &u
			}
		}
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil
	}
	return &u
}
