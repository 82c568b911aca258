package store_test

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keybuf/internal/domain"
	"keybuf/internal/store"
)

// fastScrypt keeps key derivation cheap in tests.
var fastScrypt = store.ScryptParams{N: 1 << 10, R: 8, P: 1}

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ids domain.IdentityStore = store.NewIdentityFileStore(home, fastScrypt)

	id := domain.Identity{
		XPub:   domain.X25519Public{1},
		XPriv:  domain.X25519Private{2},
		EdPub:  domain.Ed25519Public{3},
		EdPriv: domain.Ed25519Private{4},
		SecPub: domain.PublicKey{0x02, 5},
		SecKey: domain.SecretKey{6},
		PQPub:  domain.Dilithium3Public{7},
		PQSeed: domain.Dilithium3Seed{8},
	}

	require.NoError(t, ids.SaveIdentity(pass, id))

	got, err := ids.LoadIdentity(pass)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	info, err := os.Stat(filepath.Join(home, "identity.json.enc"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ids domain.IdentityStore = store.NewIdentityFileStore(home, fastScrypt)

	id := domain.Identity{XPub: domain.X25519Public{1}, XPriv: domain.X25519Private{2}}
	require.NoError(t, ids.SaveIdentity("correct", id))

	_, err := ids.LoadIdentity("wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestIdentity_Missing(t *testing.T) {
	ids := store.NewIdentityFileStore(t.TempDir(), fastScrypt)
	_, err := ids.LoadIdentity("pass")
	assert.True(t, errors.Is(err, store.ErrNoIdentity))
}

func TestIdentity_NullOrMissingKey_Fails(t *testing.T) {
	full, err := json.Marshal(domain.Identity{SecPub: domain.PublicKey{0x02, 1}})
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(full, &fields))

	tests := []struct {
		name   string
		edit   func(map[string]json.RawMessage)
		absent string
	}{
		{"only xpub null", func(m map[string]json.RawMessage) {
			clear(m)
			m["xpub"] = json.RawMessage("null")
		}, "xpub"},
		{"seckey null", func(m map[string]json.RawMessage) {
			m["seckey"] = json.RawMessage("null")
		}, "seckey"},
		{"pqseed missing", func(m map[string]json.RawMessage) {
			delete(m, "pqseed")
		}, "pqseed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := maps.Clone(fields)
			test.edit(m)
			raw, err := json.Marshal(m)
			require.NoError(t, err)

			home := t.TempDir()
			ct, err := store.Seal("pw", raw, fastScrypt)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(home, "identity.json.enc"), ct, 0o600))

			got, err := store.NewIdentityFileStore(home, fastScrypt).LoadIdentity("pw")
			assert.ErrorIs(t, err, store.ErrIncompleteIdentity)
			assert.ErrorContains(t, err, test.absent)
			assert.Equal(t, domain.Identity{}, got)
		})
	}

	// The untouched blob still loads.
	home := t.TempDir()
	ct, err := store.Seal("pw", full, fastScrypt)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, "identity.json.enc"), ct, 0o600))
	got, err := store.NewIdentityFileStore(home, fastScrypt).LoadIdentity("pw")
	require.NoError(t, err)
	assert.Equal(t, domain.PublicKey{0x02, 1}, got.SecPub)
}

func TestIdentity_ParamsRecordedInBlob(t *testing.T) {
	home := t.TempDir()
	id := domain.Identity{XPub: domain.X25519Public{9}}

	require.NoError(t, store.NewIdentityFileStore(home, fastScrypt).SaveIdentity("p", id))

	// A store configured with other parameters still opens the blob.
	got, err := store.NewIdentityFileStore(home, store.ScryptParams{N: 1 << 11, R: 8, P: 1}).LoadIdentity("p")
	require.NoError(t, err)
	assert.Equal(t, id.XPub, got.XPub)
}
