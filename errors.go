package orderx

import (
	"github.com/boostgo/errorx"
)

var (
	ErrInvalidName = errorx.New("orderx.name.invalid")

	ErrDirectoryNotExist = errorx.New("orderx.directory.not_exist")
	ErrNotDirectory      = errorx.New("orderx.directory.not_directory")
	ErrStatDirectory     = errorx.New("orderx.directory.stat")
	ErrReadDirectory     = errorx.New("orderx.directory.read")

	ErrRenameEntry       = errorx.New("orderx.entry.rename")
	ErrStatDestination   = errorx.New("orderx.entry.rename.stat_destination")
	ErrDestinationExists = errorx.New("orderx.entry.rename.destination_exists")
	ErrRenameCycle       = errorx.New("orderx.entry.rename.cycle")

	ErrEntryExists     = errorx.New("orderx.entry.exists")
	ErrCreateFile      = errorx.New("orderx.entry.create.file")
	ErrCreateDirectory = errorx.New("orderx.entry.create.directory")
)

type nameErrorContext struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

func newInvalidNameError(name, path string) error {
	return ErrInvalidName.
		SetData(nameErrorContext{
			Name: name,
			Path: path,
		})
}

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newDirectoryNotExistError(path string, err error) error {
	return ErrDirectoryNotExist.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newNotDirectoryError(path string) error {
	return ErrNotDirectory.
		SetData(pathErrorContext{
			Path: path,
		})
}

func newStatDirectoryError(path string, err error) error {
	return ErrStatDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReadDirectoryError(path string, err error) error {
	return ErrReadDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newEntryExistsError(path string, err error) error {
	return ErrEntryExists.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCreateFileError(path string, err error) error {
	return ErrCreateFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCreateDirectoryError(path string, err error) error {
	return ErrCreateDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type moveErrorContext struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Error       error  `json:"error"`
}

func newRenameEntryError(src, dst string, err error) error {
	return ErrRenameEntry.
		SetError(err).
		SetData(moveErrorContext{
			Source:      src,
			Destination: dst,
			Error:       err,
		})
}

func newStatDestinationError(src, dst string, err error) error {
	return ErrStatDestination.
		SetError(err).
		SetData(moveErrorContext{
			Source:      src,
			Destination: dst,
			Error:       err,
		})
}

func newDestinationExistsError(src, dst string) error {
	return ErrDestinationExists.
		SetData(moveErrorContext{
			Source:      src,
			Destination: dst,
		})
}

func newRenameCycleError(src, dst string) error {
	return ErrRenameCycle.
		SetData(moveErrorContext{
			Source:      src,
			Destination: dst,
		})
}
