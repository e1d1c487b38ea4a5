// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for vagas.
// It manages all interactions with the OS keychain/credential store through
// 99designs/keyring: macOS Keychain, Windows Credential Manager, Secret Service or
// KWallet on Linux, with an encrypted file store as the last resort.
package keychain

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	"vagas/cli/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "vagas"

// KeySession is the single key holding the serialized signed-in user.
const KeySession = "app_user"

// Environment overrides for headless machines.
const (
	EnvBackend      = "VAGAS_KEYRING_BACKEND"
	EnvFilePassword = "VAGAS_KEYRING_PASSWORD"
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewWithRing wraps an already opened keyring, e.g. keyring.NewArrayKeyring in tests.
func NewWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// allowedBackends returns the backends tried for the current OS, most native first.
func allowedBackends() []keyring.BackendType {
	if forced := os.Getenv(EnvBackend); forced != "" {
		return []keyring.BackendType{keyring.BackendType(forced)}
	}
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

// openRing opens the OS keyring. The file backend is only reached when no
// native store is available; its passphrase comes from VAGAS_KEYRING_PASSWORD
// or an interactive prompt.
func openRing() (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          allowedBackends(),
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		KeychainTrustApplication: true,
	}

	if dir, err := xdg.StateDir(); err == nil {
		cfg.FileDir = dir
	}
	if pw := os.Getenv(EnvFilePassword); pw != "" {
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(pw)
	} else {
		cfg.FilePasswordFunc = keyring.TerminalPrompt
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("secure storage unavailable (set %s=file to use an encrypted file): %w", EnvBackend, err)
	}
	return ring, nil
}

// Save stores data under key.
// This method is thread-safe.
func (m *Manager) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{Key: key, Data: data, Label: ServiceName + " " + key})
}

// Load retrieves the data stored under key. A missing key yields (nil, nil).
// This method is thread-safe.
func (m *Manager) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// Remove deletes key. Removing a missing key is not an error.
// This method is thread-safe.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
