package orderx

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// DefaultMinWidth is the narrowest prefix ever written
const DefaultMinWidth = 2

// Option represents optional parameters for orderx operations
type Option func(*options)

type options struct {
	fs       afero.Fs
	logger   *slog.Logger
	minWidth int
	dryRun   bool
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// defaultOptions returns default options: the OS filesystem and a silent logger
func defaultOptions() *options {
	return &options{
		fs:       afero.NewOsFs(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		minWidth: DefaultMinWidth,
		dryRun:   false,
		dirPerm:  0755,
		filePerm: 0644,
	}
}

func newOptions(options []Option) *options {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	return opts
}

// WithFs runs the operation against fs instead of the OS filesystem
func WithFs(fs afero.Fs) Option {
	return func(opts *options) {
		if fs != nil {
			opts.fs = fs
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMinWidth sets the minimum prefix width. Values below 1 are ignored
func WithMinWidth(width int) Option {
	return func(opts *options) {
		if width > 0 {
			opts.minWidth = width
		}
	}
}

// WithDryRun plans renames and creation without touching the filesystem
func WithDryRun() Option {
	return func(opts *options) {
		opts.dryRun = true
	}
}

// WithDirPermissions sets permissions for directories created by Insert
func WithDirPermissions(perm os.FileMode) Option {
	return func(opts *options) {
		opts.dirPerm = perm
	}
}

// WithFilePermissions sets permissions for files created by Insert
func WithFilePermissions(perm os.FileMode) Option {
	return func(opts *options) {
		opts.filePerm = perm
	}
}
