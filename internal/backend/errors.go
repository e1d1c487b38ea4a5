// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotCreated is returned by CreateUser when the server answered with a
// success status other than 201 Created.
var ErrNotCreated = errors.New("user not created")

// StatusError reports a response with a non-success status code.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed: %d %s", e.Op, e.StatusCode, e.Body)
}

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 512

func statusError(op string, resp *http.Response) *StatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(b)),
	}
}
