package orderx

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// populate creates the given names in dir; a trailing slash makes a directory.
// Each file holds its own name so moves can be traced
func populate(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.Mkdir(filepath.Join(dir, strings.TrimSuffix(name, "/")), 0755))
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

// names returns the sorted entry names of dir
func names(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Name())
	}
	sort.Strings(result)

	return result
}

func content(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func mustEntry(t *testing.T, dir, name string) Entry {
	t.Helper()

	parsed, err := ParseName(name)
	require.NoError(t, err)

	return Entry{Name: parsed, Path: filepath.Join(dir, name)}
}
