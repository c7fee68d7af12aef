package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

func sized(t *testing.T, n int64) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	require.NoError(t, os.Truncate(p, n))
	return p
}

func TestReadFileWithLimit(t *testing.T) {
	data, err := ReadFileWithLimit(sized(t, MaxFileSize))
	require.NoError(t, err)
	assert.Len(t, data, int(MaxFileSize))

	p := sized(t, MaxFileSize+1)
	_, err = ReadFileWithLimit(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
	assert.Contains(t, err.Error(), p)
}

func TestReadCapped(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ACTIVE_SKILLS.txt")
	require.NoError(t, os.WriteFile(p, []byte("op-deploy\n"), 0o644))

	data, err := ReadCapped(p, 10)
	require.NoError(t, err)
	assert.Equal(t, "op-deploy\n", string(data))

	_, err = ReadCapped(p, 9)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestReadCapped_Missing(t *testing.T) {
	_, err := ReadCapped(filepath.Join(t.TempDir(), "nope"), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrFileTooLarge))
}
