package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zalando/go-keyring"
)

// keychainService is the service name entries appear under in the OS
// keychain.
const keychainService = "repograph"

// Local is the production KeyValue: keychain for secrets, a JSON file for
// everything else.
type Local struct {
	service   string
	flagsPath string
	mu        sync.Mutex
}

// NewLocal creates the store, placing the flags file under the user config
// directory (e.g. ~/.config/repograph/flags.json).
func NewLocal() (*Local, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	appDir := filepath.Join(configDir, "repograph")
	if err := os.MkdirAll(appDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}
	return &Local{
		service:   keychainService,
		flagsPath: filepath.Join(appDir, "flags.json"),
	}, nil
}

// Get returns the stored value for key, or ErrNotFound.
func (l *Local) Get(key string) (string, error) {
	if IsSecret(key) {
		value, err := keyring.Get(l.service, key)
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", fmt.Errorf("keychain read for %q failed: %w", key, err)
		}
		return value, nil
	}

	flags, err := l.readFlags()
	if err != nil {
		return "", err
	}
	value, ok := flags[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores the value under key, overwriting any previous value.
func (l *Local) Set(key, value string) error {
	if IsSecret(key) {
		if err := keyring.Set(l.service, key, value); err != nil {
			return fmt.Errorf("keychain write for %q failed: %w", key, err)
		}
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	flags, err := l.readFlagsLocked()
	if err != nil {
		return err
	}
	flags[key] = value
	return l.writeFlagsLocked(flags)
}

// Delete removes the key; deleting an absent key is not an error.
func (l *Local) Delete(key string) error {
	if IsSecret(key) {
		err := keyring.Delete(l.service, key)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("keychain delete for %q failed: %w", key, err)
		}
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	flags, err := l.readFlagsLocked()
	if err != nil {
		return err
	}
	delete(flags, key)
	return l.writeFlagsLocked(flags)
}

func (l *Local) readFlags() (map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readFlagsLocked()
}

func (l *Local) readFlagsLocked() (map[string]string, error) {
	data, err := os.ReadFile(l.flagsPath)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flags file: %w", err)
	}
	flags := map[string]string{}
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("failed to parse flags file: %w", err)
	}
	return flags, nil
}

func (l *Local) writeFlagsLocked(flags map[string]string) error {
	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode flags: %w", err)
	}
	if err := os.WriteFile(l.flagsPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write flags file: %w", err)
	}
	return nil
}
