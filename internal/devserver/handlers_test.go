// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vagas/cli/internal/model"
)

func newTestRouter(seed ...model.User) http.Handler {
	return NewRouter(NewHandler(NewMemory(seed...), "test"))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListUsers(t *testing.T) {
	h := newTestRouter(model.User{ID: 1, Name: "Alice", Email: "a@x.com", Password: "p"})

	rec := do(t, h, http.MethodGet, "/api/usuarios", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Users []model.User `json:"usuarios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Users, 1)
	assert.Equal(t, "a@x.com", out.Users[0].Email)
	assert.Equal(t, "p", out.Users[0].Password)
}

func TestListUsersEmptyIsArray(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/usuarios", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"usuarios":[]}`, rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"nome":"Carol","email":"c@x.com","senha":"pw"}`, http.StatusCreated},
		{"missing nome", `{"email":"c@x.com","senha":"pw"}`, http.StatusBadRequest},
		{"missing senha", `{"nome":"Carol","email":"c@x.com"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(), http.MethodPost, "/api/usuarios", tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	h := newTestRouter(model.User{ID: 7, Email: "seed@x.com"})

	rec := do(t, h, http.MethodPost, "/api/usuarios", `{"nome":"Carol","email":"c@x.com","senha":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out struct {
		User model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 8, out.User.ID)
	assert.Equal(t, "Carol", out.User.Name)
}

func TestUpdateUser(t *testing.T) {
	seed := model.User{ID: 1, Name: "Alice", Email: "a@x.com", Password: "p"}

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"updated", "/api/usuarios/1", `{"nome":"Alice B","email":"a@x.com","senha":"p"}`, http.StatusOK},
		{"unknown id", "/api/usuarios/99", `{"nome":"X","email":"x@x.com","senha":"p"}`, http.StatusNotFound},
		{"bad id", "/api/usuarios/abc", `{}`, http.StatusBadRequest},
		{"malformed body", "/api/usuarios/1", `nope`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(seed), http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestUpdateReturnsStoredUser(t *testing.T) {
	h := newTestRouter(model.User{ID: 1, Name: "Alice", Email: "a@x.com", Password: "p"})

	rec := do(t, h, http.MethodPut, "/api/usuarios/1", `{"nome":"Alice B","email":"a@x.com","senha":"q"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":1,"nome":"Alice B","email":"a@x.com","senha":"q"}}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/usuarios", "")
	assert.Contains(t, rec.Body.String(), `"Alice B"`)
}

func TestVersion(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"test"}`, rec.Body.String())
}

func TestRequestIDHeaderAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
