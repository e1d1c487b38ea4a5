// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vagas/cli/internal/logging"
	"vagas/cli/internal/model"
)

// Handler serves the users endpoints.
type Handler struct {
	repo    Repository
	version string
}

// NewHandler returns a Handler over repo reporting version on /api/version.
func NewHandler(repo Repository, version string) *Handler {
	return &Handler{repo: repo, version: version}
}

type userRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (r userRequest) complete() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		r.Password != ""
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"usuarios": users})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !req.complete() {
		fail(w, http.StatusBadRequest, "nome, email and senha are required")
		return
	}

	u, err := h.repo.Create(r.Context(), model.User{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": u})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	u, err := h.repo.Update(r.Context(), model.User{ID: id, Name: req.Name, Email: req.Email, Password: req.Password})
	if errors.Is(err, ErrNotFound) {
		fail(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.With("devserver").Error().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("error", logging.Mask(err.Error())).
		Msg("repository failure")
	fail(w, http.StatusInternalServerError, "internal error")
}
