package firstrun

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCreatesSentinelOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.txt")

	first, err := Check(path)
	require.NoError(t, err)
	assert.True(t, first)

	_, err = os.Stat(path)
	require.NoError(t, err, "the sentinel file exists after the first check")

	again, err := Check(path)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestCheckHonorsPreexistingSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.txt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))

	first, err := Check(path)
	require.NoError(t, err)
	assert.False(t, first, "any existing file counts, regardless of content")
}
