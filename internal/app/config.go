package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"keybuf/internal/store"
)

// ConfigFilename is the name of the optional config file under Home.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home           string             `yaml:"home"`            // data directory, e.g. $HOME/.keybuf
	KeyringBackend string             `yaml:"keyring_backend"` // "file" or "pebble"
	Scrypt         store.ScryptParams `yaml:"scrypt"`          // cost of new identity blobs
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:           home,
		KeyringBackend: store.BackendFile,
		Scrypt:         store.DefaultScryptParams(),
	}
}

// LoadConfig reads the YAML config at path over the defaults for home.  A
// missing file leaves the defaults in place.
func LoadConfig(path, home string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path with owner-only permissions.
func SaveConfig(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting in cfg.
func (c Config) Validate() error {
	switch c.KeyringBackend {
	case store.BackendFile, store.BackendPebble:
	default:
		return fmt.Errorf("unknown keyring_backend %q", c.KeyringBackend)
	}
	if c.Scrypt.N < 2 || c.Scrypt.N&(c.Scrypt.N-1) != 0 {
		return fmt.Errorf("scrypt n must be a power of two above 1, got %d", c.Scrypt.N)
	}
	if c.Scrypt.R <= 0 || c.Scrypt.P <= 0 {
		return fmt.Errorf("scrypt r and p must be positive")
	}
	return nil
}
