// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"time"
)

// New creates a backend API implementation talking to baseURL with the
// default endpoint paths. timeout bounds every request; zero means 10s.
func New(baseURL string, timeout time.Duration) API {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return newHTTP(baseURL, DefaultEndpoints(), &http.Client{Timeout: timeout})
}
