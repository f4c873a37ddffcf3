package credential

import (
	"fmt"
	"sync"

	"github.com/99designs/keyring"
)

const serviceName = "teamboard"

var (
	mu       sync.Mutex
	override keyring.Keyring
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	mu.Lock()
	ring := override
	mu.Unlock()
	if ring != nil {
		return ring, nil
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/teamboard/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("teamboard-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Use replaces the system keyring for all subsequent calls. Passing nil
// restores the system keyring.
func Use(ring keyring.Keyring) {
	mu.Lock()
	defer mu.Unlock()
	override = ring
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: serviceName + " " + key,
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// Delete removes a credential by key from the system keyring.
func Delete(key string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	if err := ring.Remove(key); err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}

	return nil
}
