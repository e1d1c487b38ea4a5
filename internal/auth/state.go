// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import "vagas/cli/internal/model"

// State is the session lifecycle state.
type State int

const (
	// Loading is the initial state, until the stored session has been read.
	Loading State = iota
	// Unauthenticated means no user is signed in.
	Unauthenticated
	// Authenticated means a user is signed in and persisted.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Route is a navigation intent returned to the presentation layer.
type Route int

const (
	// RouteNone means stay where you are.
	RouteNone Route = iota
	// RouteHome means show the signed-in home view.
	RouteHome
	// RouteLogin means show the sign-in view.
	RouteLogin
)

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteLogin:
		return "login"
	}
	return "none"
}

// Snapshot is a consistent, copied view of the controller's session.
type Snapshot struct {
	State State
	User  *model.User
}
