package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// DefaultPath returns the location of the persisted settings file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".linestamp", "config.json")
	}
	return filepath.Join(home, ".linestamp", "config.json")
}

// Load reads settings from path. An absent file yields defaults; a corrupt
// file also yields defaults with an error describing what was ignored, so
// callers can log it and keep going.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := sonic.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	s.Normalize()

	data, err := sonic.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
