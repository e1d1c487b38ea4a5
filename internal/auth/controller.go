// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth owns the signed-in session: it restores it at startup, signs
// users in and out, edits the profile and creates accounts. Every failure is
// notified to the user where it happens and returned as a typed error.
package auth

import (
	"context"
	stderrors "errors"
	"sync"

	"vagas/cli/internal/backend"
	apperrors "vagas/cli/internal/errors"
	"vagas/cli/internal/httperrors"
	"vagas/cli/internal/logging"
	"vagas/cli/internal/model"
	"vagas/cli/internal/notify"
)

// SessionStore persists the session record. *session.Store satisfies it.
type SessionStore interface {
	Load() *model.User
	Save(u model.User) error
	Clear() error
}

// Controller is the single writer of the session state.
type Controller struct {
	api      backend.API
	store    SessionStore
	notifier notify.Notifier

	mu    sync.RWMutex
	state State
	user  *model.User
	subs  map[int]func(Snapshot)
	next  int
}

// NewController returns a controller in the Loading state.
func NewController(api backend.API, store SessionStore, notifier notify.Notifier) *Controller {
	return &Controller{
		api:      api,
		store:    store,
		notifier: notifier,
		state:    Loading,
		subs:     make(map[int]func(Snapshot)),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// User returns a copy of the signed-in user, or nil.
func (c *Controller) User() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyUser(c.user)
}

// Snapshot returns state and user read together.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{State: c.state, User: copyUser(c.user)}
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Restore reads the persisted session. It always leaves Loading.
func (c *Controller) Restore(ctx context.Context) State {
	u := c.store.Load()
	if u == nil {
		c.set(Unauthenticated, nil)
		return Unauthenticated
	}
	c.set(Authenticated, u)
	return Authenticated
}

// SignIn authenticates by looking up email and password in the user list.
func (c *Controller) SignIn(ctx context.Context, email, password string) (Route, error) {
	log := logging.With("auth")

	if err := validateInput(signInInput{Email: email, Password: password}); err != nil {
		c.notifier.Notify(MsgMissingSignInFields)
		return RouteNone, err
	}

	users, err := c.api.ListUsers(ctx)
	if err != nil {
		return RouteNone, c.networkFailure("list users", err)
	}

	var found *model.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		log.Debug().Int("candidates", len(users)).Msg("no user matched the credentials")
		c.notifier.Notify(MsgInvalidCredentials)
		return RouteNone, apperrors.New(apperrors.Authentication, "incorrect email or password")
	}

	if err := c.store.Save(*found); err != nil {
		log.Error().Str("error", logging.Mask(err.Error())).Msg("could not persist session")
		c.notifier.Notify(MsgSessionNotSaved)
		return RouteNone, apperrors.Wrap(apperrors.Storage, "persist session", err)
	}

	c.set(Authenticated, found)
	log.Info().Int("user_id", found.ID).Msg("signed in")
	return RouteHome, nil
}

// SignOut asks for confirmation and then discards the session.
func (c *Controller) SignOut(ctx context.Context) (Route, error) {
	if !c.notifier.Confirm(PromptSignOut) {
		return RouteNone, nil
	}

	c.set(Unauthenticated, nil)

	if err := c.store.Clear(); err != nil {
		logging.With("auth").Error().Str("error", logging.Mask(err.Error())).Msg("could not clear persisted session")
		return RouteLogin, apperrors.Wrap(apperrors.Storage, "clear session", err)
	}
	logging.With("auth").Info().Msg("signed out")
	return RouteLogin, nil
}

// EditUser updates the profile of user id. When the API returns the updated
// user and someone is signed in, it becomes the session.
func (c *Controller) EditUser(ctx context.Context, id int, name, email, password string) (Route, error) {
	log := logging.With("auth")

	updated, err := c.api.UpdateUser(ctx, id, name, email, password)
	if err != nil {
		log.Error().Int("user_id", id).Str("error", logging.Mask(err.Error())).Msg("update failed")
		c.notifier.Notify(MsgUpdateFailure.WithDetail(httperrors.Explain(err)))
		return RouteNone, apperrors.Wrap(apperrors.Network, "update user", err)
	}

	if updated != nil && c.State() == Authenticated {
		if err := c.store.Save(*updated); err != nil {
			log.Error().Str("error", logging.Mask(err.Error())).Msg("could not persist updated session")
			c.notifier.Notify(MsgUpdateFailure)
			return RouteNone, apperrors.Wrap(apperrors.Storage, "persist session", err)
		}
		c.set(Authenticated, updated)
	} else if updated == nil {
		log.Debug().Int("user_id", id).Msg("update response carried no user; session unchanged")
	}

	c.notifier.Notify(MsgUpdateSuccess)
	return RouteNone, nil
}

// CreateUser registers a new account unless the email is already taken.
func (c *Controller) CreateUser(ctx context.Context, name, email, password string) (Route, error) {
	log := logging.With("auth")

	if err := validateInput(createInput{Name: name, Email: email, Password: password}); err != nil {
		c.notifier.Notify(MsgMissingCreateFields)
		return RouteNone, err
	}

	users, err := c.api.ListUsers(ctx)
	if err != nil {
		return RouteNone, c.networkFailure("list users", err)
	}
	for _, u := range users {
		if u.Email == email {
			c.notifier.Notify(MsgDuplicateEmail)
			return RouteNone, apperrors.New(apperrors.Conflict, "email already registered")
		}
	}

	created, err := c.api.CreateUser(ctx, name, email, password)
	switch {
	case stderrors.Is(err, backend.ErrNotCreated):
		log.Warn().Str("error", err.Error()).Msg("create user returned an unexpected status")
		c.notifier.Notify(MsgCreateFailure)
		return RouteNone, apperrors.Wrap(apperrors.Network, "create user", err)
	case err != nil:
		return RouteNone, c.networkFailure("create user", err)
	}

	if created != nil {
		log.Info().Int("user_id", created.ID).Msg("account created")
	}
	c.notifier.Notify(MsgCreateSuccess)
	return RouteLogin, nil
}

func (c *Controller) networkFailure(op string, err error) error {
	logging.With("auth").Error().
		Str("op", op).
		Str("reason", string(httperrors.Classify(err))).
		Str("error", logging.Mask(err.Error())).
		Msg("request failed")
	c.notifier.Notify(MsgConnectivity.WithDetail(httperrors.Explain(err)))
	return apperrors.Wrap(apperrors.Network, op, err)
}

// set replaces the session and notifies subscribers outside the lock.
func (c *Controller) set(state State, u *model.User) {
	c.mu.Lock()
	c.state = state
	c.user = copyUser(u)
	snap := Snapshot{State: c.state, User: copyUser(c.user)}
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func copyUser(u *model.User) *model.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
