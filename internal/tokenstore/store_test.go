package tokenstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token())

	require.NoError(t, s.Store("token-one"))
	assert.Equal(t, "token-one", s.Token())

	require.NoError(t, s.Store("token-two"))
	assert.Equal(t, "token-two", s.Token())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "token-two", reopened.Token())
}

func TestStore_ClearRemovesToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Store("token"))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, reopened.Token(), "cleared token must not survive reopen")
}
