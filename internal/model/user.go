// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the account record exchanged with the users API and
// persisted as the local session.
package model

import "fmt"

// User is an account in the users collection. Field names on the wire follow
// the backend (nome, senha). The password is plaintext by contract.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Valid reports whether u looks like a usable session record.
func (u *User) Valid() bool {
	return u != nil && u.Email != ""
}

// String never includes the password.
func (u User) String() string {
	return fmt.Sprintf("#%d %s <%s>", u.ID, u.Name, u.Email)
}
