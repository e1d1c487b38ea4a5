// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package notify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"vagas/cli/internal/logging"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Terminal renders notifications as pterm boxes and asks confirmations
// interactively when stdin is a terminal, or by reading a line otherwise.
type Terminal struct {
	out       io.Writer
	in        *bufio.Reader
	assumeYes bool
}

// NewTerminal returns a Terminal writing to stdout and reading stdin.
// With assumeYes every confirmation is accepted without asking.
func NewTerminal(assumeYes bool) *Terminal {
	return &Terminal{out: os.Stdout, in: bufio.NewReader(os.Stdin), assumeYes: assumeYes}
}

// NewTerminalWith is NewTerminal over explicit streams; confirmations are
// always read as lines from in.
func NewTerminalWith(out io.Writer, in io.Reader, assumeYes bool) *Terminal {
	return &Terminal{out: out, in: bufio.NewReader(in), assumeYes: assumeYes}
}

func titleStyle(l Level) *pterm.Style {
	switch l {
	case LevelError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case LevelSuccess:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	}
}

// Notify prints m as a titled box.
func (t *Terminal) Notify(m Message) {
	body := m.Body
	if m.Detail != "" {
		body += "\n\n" + pterm.NewStyle(pterm.FgGray).Sprint(m.Detail)
	}
	box := pterm.DefaultBox.WithTitle(titleStyle(m.Level).Sprint(m.Title)).Sprint(body)
	fmt.Fprintln(t.out, box)
}

// Confirm asks p and reports whether the confirm option was chosen.
// Any input error counts as cancel.
func (t *Terminal) Confirm(p Prompt) bool {
	if t.assumeYes {
		return true
	}

	fmt.Fprintln(t.out, titleStyle(LevelInfo).Sprint(p.Title))

	if t.out == os.Stdout && isTerminal(int(os.Stdin.Fd())) {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			WithConfirmText(p.Confirm).
			WithRejectText(p.Cancel).
			Show(p.Body)
		if err != nil {
			logging.With("notify").Debug().Err(err).Msg("confirmation prompt failed; treating as cancel")
			return false
		}
		return ok
	}

	fmt.Fprintf(t.out, "%s [%s/%s]: ", p.Body, p.Confirm, p.Cancel)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	confirm := strings.ToLower(p.Confirm)
	return answer != "" && (answer == confirm || answer == "y" || answer == "yes" || strings.HasPrefix(confirm, answer))
}
