package orderx

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// ListOrdered returns the managed entries of a directory sorted by numeric
// prefix. Names without a numeric prefix are skipped. Entries sharing a
// prefix keep the listing order, which is lexical by name
func ListOrdered(path string, options ...Option) ([]Entry, error) {
	opts := newOptions(options)
	return listOrdered(opts.fs, path)
}

func listOrdered(fs afero.Fs, path string) ([]Entry, error) {
	if err := checkDirectory(fs, path); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, newReadDirectoryError(path, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		name, err := ParseName(info.Name())
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(path, info.Name()),
			IsDir: info.IsDir(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name.Number() < entries[j].Name.Number()
	})

	return entries, nil
}

// checkDirectory fails unless path exists and is a directory
func checkDirectory(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDirectoryNotExistError(path, err)
		}
		return newStatDirectoryError(path, err)
	}

	if !info.IsDir() {
		return newNotDirectoryError(path)
	}

	return nil
}
