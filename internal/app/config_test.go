package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keybuf/internal/store"
)

func TestLoadConfig_MissingUsesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(home, ConfigFilename), home)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(home), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ConfigFilename)
	doc := "keyring_backend: pebble\nscrypt:\n  n: 1024\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := LoadConfig(path, home)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, store.BackendPebble, cfg.KeyringBackend)
	assert.Equal(t, store.ScryptParams{N: 1024, R: 8, P: 1}, cfg.Scrypt)
}

func TestLoadConfig_Invalid(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ConfigFilename)

	for _, doc := range []string{
		"keyring_backend: etcd\n",
		"scrypt:\n  n: 1000\n",
		"scrypt:\n  r: 0\n",
		"keyring_backend: [\n",
	} {
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
		_, err := LoadConfig(path, home)
		assert.Error(t, err, "doc %q", doc)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "nested", ConfigFilename)

	cfg := DefaultConfig(home)
	cfg.KeyringBackend = store.BackendPebble
	require.NoError(t, SaveConfig(cfg, path))

	got, err := LoadConfig(path, "elsewhere")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestNewWire(t *testing.T) {
	for _, backend := range []string{store.BackendFile, store.BackendPebble} {
		cfg := DefaultConfig(t.TempDir())
		cfg.KeyringBackend = backend
		cfg.Scrypt = store.ScryptParams{N: 1 << 10, R: 8, P: 1}

		w, err := NewWire(cfg)
		require.NoError(t, err)
		assert.NotNil(t, w.IDs)
		assert.NotNil(t, w.Peers)

		list, err := w.Peers.List()
		require.NoError(t, err)
		assert.Empty(t, list)
		require.NoError(t, w.Close())
	}

	_, err := NewWire(Config{Home: t.TempDir(), KeyringBackend: "etcd"})
	assert.Error(t, err)
}
