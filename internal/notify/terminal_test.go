// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func init() {
	pterm.DisableStyling()
}

var signOut = Prompt{Title: "Attention!", Body: "Are you sure you want to sign out?", Cancel: "Cancel", Confirm: "Yes"}

func TestNotifyRendersTitleBodyAndDetail(t *testing.T) {
	var out bytes.Buffer
	n := NewTerminalWith(&out, strings.NewReader(""), false)

	n.Notify(Message{Level: LevelError, Title: "Error", Body: "Could not connect to the API"}.WithDetail("Is the API running?"))

	got := out.String()
	assert.Contains(t, got, "Error")
	assert.Contains(t, got, "Could not connect to the API")
	assert.Contains(t, got, "Is the API running?")
}

func TestConfirmFromLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes word", "Yes\n", true},
		{"y", "y\n", true},
		{"prefix of confirm", "ye\n", true},
		{"cancel", "Cancel\n", false},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"yes without newline", "yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n := NewTerminalWith(&out, strings.NewReader(tt.input), false)
			assert.Equal(t, tt.want, n.Confirm(signOut))
			assert.Contains(t, out.String(), "Are you sure you want to sign out? [Yes/Cancel]")
		})
	}
}

func TestConfirmAssumeYes(t *testing.T) {
	var out bytes.Buffer
	n := NewTerminalWith(&out, strings.NewReader(""), true)
	assert.True(t, n.Confirm(signOut))
	assert.Empty(t, out.String(), "nothing is asked when confirmation is assumed")
}
