package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListingFileAdapterReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ls.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dependencies":{}}`), 0644))

	result := NewListingFileAdapter(path).List(t.Context(), ".")
	require.False(t, result.Failed())
	require.Equal(t, `{"dependencies":{}}`, result.Stdout)
}

func TestListingFileAdapterMissingFile(t *testing.T) {
	result := NewListingFileAdapter(filepath.Join(t.TempDir(), "missing.json")).List(t.Context(), ".")
	require.True(t, result.Failed())
	require.Equal(t, -1, result.Failure.ExitCode)
	require.NotEmpty(t, result.Stderr)
}
