package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("token", "token-u1-1700000000000"))

	var token string
	assert.True(t, store.Get("token", &token))
	assert.Equal(t, "token-u1-1700000000000", token)
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	var v string
	assert.False(t, store.Get("nope", &v))
}

func TestMalformedStateTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doctor.json"), []byte("{not json"), 0o600))

	var v map[string]any
	assert.False(t, store.Get("doctor", &v))
}

func TestRemove(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("aToken", "abc"))
	store.Remove("aToken")
	store.Remove("aToken") // second remove is harmless

	var v string
	assert.False(t, store.Get("aToken", &v))
}
