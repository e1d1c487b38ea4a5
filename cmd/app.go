// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"vagas/cli/internal/auth"
	"vagas/cli/internal/backend"
	"vagas/cli/internal/keychain"
	"vagas/cli/internal/logging"
	"vagas/cli/internal/notify"
	"vagas/cli/internal/session"
	"vagas/cli/internal/terminal"

	"github.com/spf13/cobra"
)

// app is what every account command needs: a controller with the session
// already restored and a prompter for missing input.
type app struct {
	ctrl     *auth.Controller
	prompt   *terminal.Prompter
	notifier *pausingNotifier
}

// newApp wires the session store, API client and notifier from the loaded
// configuration and restores the persisted session.
func newApp(cmd *cobra.Command, assumeYes bool) (*app, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, fmt.Errorf("open keychain: %w", err)
	}

	api := backend.New(cfg.APIURL, cfg.Timeout.Std())
	n := &pausingNotifier{inner: notify.NewTerminal(assumeYes)}
	ctrl := auth.NewController(api, session.NewStore(km), n)

	state := ctrl.Restore(cmd.Context())
	logging.With("cmd").Debug().Str("state", state.String()).Str("api_url", cfg.APIURL).Msg("session restored")

	return &app{
		ctrl:     ctrl,
		prompt:   terminal.NewPrompter(),
		notifier: n,
	}, nil
}

// busy runs fn behind an inline spinner. The spinner is stopped before any
// notification is shown.
func (a *app) busy(text string, fn func()) {
	stop := startInlineSpinner(os.Stdout, text)
	a.notifier.setPause(stop)
	defer a.notifier.setPause(nil)
	defer stop()
	fn()
}

// pausingNotifier runs a hook before presenting anything, so transient
// output such as a spinner never interleaves with a notification.
type pausingNotifier struct {
	inner notify.Notifier

	mu    sync.Mutex
	pause func()
}

func (p *pausingNotifier) setPause(fn func()) {
	p.mu.Lock()
	p.pause = fn
	p.mu.Unlock()
}

func (p *pausingNotifier) before() {
	p.mu.Lock()
	fn := p.pause
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (p *pausingNotifier) Notify(m notify.Message) {
	p.before()
	p.inner.Notify(m)
}

func (p *pausingNotifier) Confirm(pr notify.Prompt) bool {
	p.before()
	return p.inner.Confirm(pr)
}
