// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"vagas/cli/internal/model"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// startInlineSpinner animates frames followed by text on one line of w until
// the returned function is called. The stop function is safe to call more
// than once. Nothing is drawn when w is not a terminal.
func startInlineSpinner(w io.Writer, text string) func() {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	cursor.Hide()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			line := fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text)
			select {
			case <-stop:
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
			cursor.Show()
		})
	}
}

// printHome shows the signed-in view.
func printHome(u *model.User) {
	if u == nil {
		return
	}
	title := pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Welcome, " + displayName(u))
	body := fmt.Sprintf("%s %s\n%s %d",
		pterm.NewStyle(pterm.FgLightCyan).Sprint("Email:"), u.Email,
		pterm.NewStyle(pterm.FgLightCyan).Sprint("ID:   "), u.ID)
	pterm.Println(pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(body))
}

// printSignedOut tells the user how to get a session.
func printSignedOut() {
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'vagas login' to sign in or 'vagas register' to create an account.")
}

func displayName(u *model.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
