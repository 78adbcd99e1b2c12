package orderx

import (
	"log/slog"
)

// Fix renumbers every managed entry of dir to 0..n-1 in prefix order, all
// padded to the same width. Running it twice renames nothing the second time.
//
// On a rename failure the returned report holds the renames applied so far
// together with the error; they are not reverted
func Fix(dir string, options ...Option) (*Report, error) {
	opts := newOptions(options)
	report := newReport(dir, opts)
	logger := report.logger(opts.logger, "fix")

	entries, err := listOrdered(opts.fs, dir)
	if err != nil {
		logger.Error("list directory", slog.Any("error", err))
		return nil, err
	}

	_, width := PaddingDigits(entries, opts.minWidth)
	plan, count, err := renumber(opts, logger, entries, nil, dir, width)
	report.record(plan, count)
	if err != nil {
		return report, err
	}

	logger.Info("fixed",
		slog.Int("entries", len(entries)),
		slog.Int("width", width),
		slog.Int("renamed", report.Renamed))

	return report, nil
}
