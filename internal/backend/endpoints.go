// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// Endpoints contains REST API endpoint paths relative to the base URL.
type Endpoints struct {
	Users   string // e.g. "/api/usuarios"
	Version string // e.g. "/api/version"
}

// DefaultEndpoints returns the paths served by the users API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Users:   "/api/usuarios",
		Version: "/api/version",
	}
}
