package orderx

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EntryKindFor returns the kind Insert creates for path: a directory when
// the name has no extension, a file otherwise
func EntryKindFor(path string) EntryKind {
	if filepath.Ext(path) == "" {
		return KindDirectory
	}

	return KindFile
}

// CreateEntry creates path as a directory or an empty file depending on its
// extension. It never touches an existing entry
func CreateEntry(path string, options ...Option) (EntryKind, error) {
	opts := newOptions(options)
	kind := EntryKindFor(path)
	if opts.dryRun {
		return kind, nil
	}

	return kind, createEntry(opts, path, kind)
}

func createEntry(opts *options, path string, kind EntryKind) error {
	if kind == KindDirectory {
		return createDirectory(opts.fs, path, opts.dirPerm)
	}

	return createFile(opts.fs, path, opts.filePerm)
}

func createDirectory(fs afero.Fs, path string, perm os.FileMode) error {
	if err := fs.Mkdir(path, perm); err != nil {
		if os.IsExist(err) {
			return newEntryExistsError(path, err)
		}
		return newCreateDirectoryError(path, err)
	}

	return nil
}

func createFile(fs afero.Fs, path string, perm os.FileMode) error {
	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if os.IsExist(err) {
			return newEntryExistsError(path, err)
		}
		return newCreateFileError(path, err)
	}

	if err := file.Close(); err != nil {
		return newCreateFileError(path, err)
	}

	return nil
}
