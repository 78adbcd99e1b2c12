package orderx

import (
	"github.com/google/uuid"
)

// Entry represents a managed member of a directory: its name passed
// validation, so its numeric prefix is always available
type Entry struct {
	Name  Name
	Path  string
	IsDir bool
}

// Rename is a single planned name change inside one directory
type Rename struct {
	From     string
	To       string
	FromPath string
	ToPath   string
}

// EntryKind is the kind of entry created by Insert
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// Report describes the outcome of a Fix or Insert run
type Report struct {
	ID        uuid.UUID
	Directory string
	Renamed   int
	Renames   []Rename
	Created   string    // Insert only, path of the new entry
	Kind      EntryKind // Insert only
	DryRun    bool
}
