// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notify presents blocking, user-facing notifications and the
// two-option confirmation prompt used by account operations.
package notify

// Level selects how a message is rendered.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Message is a titled notification. Detail is optional secondary text, e.g.
// the reason a request failed.
type Message struct {
	Level  Level
	Title  string
	Body   string
	Detail string
}

// WithDetail returns a copy of m carrying detail.
func (m Message) WithDetail(detail string) Message {
	m.Detail = detail
	return m
}

// Prompt is a question with a cancel and a confirm option.
type Prompt struct {
	Title   string
	Body    string
	Cancel  string
	Confirm string
}

// Notifier shows messages and asks for confirmation. Notify returns once the
// message is presented; Confirm blocks until the user picks an option and
// reports whether the confirm option was chosen.
type Notifier interface {
	Notify(m Message)
	Confirm(p Prompt) bool
}
