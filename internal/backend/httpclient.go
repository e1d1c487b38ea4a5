// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"vagas/cli/internal/logging"
)

// userAgent identifies the CLI to the API.
const userAgent = "vagas-cli/1.0"

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "http://localhost:3000")
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
func newHTTP(baseURL string, endpoints Endpoints, client *http.Client) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    client,
	}
}

// do sends one request with a JSON body (when non-nil), tagging it with a fresh
// X-Request-ID and logging the outcome. It never retries.
func (h *HTTP) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logging.With("backend").With().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Logger()

	start := time.Now()
	resp, err := h.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Warn().Str("error", logging.Mask(err.Error())).Dur("duration", duration).Msg("request failed")
		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode).Dur("duration", duration).Msg("request completed")
	return resp, nil
}

// GetVersion calls GET /api/version and returns the version string when available.
// No authentication required. This can be used to check connectivity to the backend service.
func (h *HTTP) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.do(ctx, http.MethodGet, h.endpoints.Version, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unknown", nil
	}
	var out struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
