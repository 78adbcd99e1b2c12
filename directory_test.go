package orderx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []Entry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Name.String())
	}

	return result
}

func TestListOrdered(t *testing.T) {
	t.Run("FiltersAndSorts", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir, "10-ten", "2-two", "01-one", ".hidden", "readme.md", "x-1", "03-three/", "0")

		entries, err := ListOrdered(dir)
		require.NoError(t, err)

		assert.Equal(t, []string{"0", "01-one", "2-two", "03-three", "10-ten"}, entryNames(entries))
		for _, entry := range entries {
			assert.True(t, IsValidName(entry.Name.String()))
			assert.Equal(t, filepath.Join(dir, entry.Name.String()), entry.Path)
		}
		assert.True(t, entries[3].IsDir)
		assert.False(t, entries[4].IsDir)
	})

	t.Run("NonDecreasing", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir, "9-a", "11-b", "100-c", "0010-d", "5-e")

		entries, err := ListOrdered(dir)
		require.NoError(t, err)

		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].Name.Number(), entries[i].Name.Number())
		}
	})

	t.Run("DuplicatePrefixesKeepListingOrder", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir, "02-b", "1-z", "01-a", "00-start")

		entries, err := ListOrdered(dir)
		require.NoError(t, err)

		assert.Equal(t, []string{"00-start", "01-a", "1-z", "02-b"}, entryNames(entries))
	})

	t.Run("Empty", func(t *testing.T) {
		entries, err := ListOrdered(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		dir := t.TempDir()
		populate(t, dir, "01-file.md")

		_, err := ListOrdered(filepath.Join(dir, "01-file.md"))
		assert.ErrorContains(t, err, "orderx.directory.not_directory")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ListOrdered(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorContains(t, err, "orderx.directory.not_exist")
	})

	t.Run("MemoryFs", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/book/02-body", 0755))
		require.NoError(t, afero.WriteFile(fs, "/book/01-preface.md", nil, 0644))
		require.NoError(t, afero.WriteFile(fs, "/book/notes.txt", nil, 0644))

		entries, err := ListOrdered("/book", WithFs(fs))
		require.NoError(t, err)

		assert.Equal(t, []string{"01-preface.md", "02-body"}, entryNames(entries))
		assert.True(t, entries[1].IsDir)
	})

	t.Run("Unreadable", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can read any directory")
		}

		dir := filepath.Join(t.TempDir(), "locked")
		require.NoError(t, os.Mkdir(dir, 0000))
		t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

		_, err := ListOrdered(dir)
		assert.ErrorContains(t, err, "orderx.directory.read")
	})
}
