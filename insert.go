package orderx

import (
	"log/slog"
	"path/filepath"
)

// Insert creates the entry at newPath and shifts every sibling whose prefix
// is at or past the new entry's prefix up by one. The prefix of the new name
// is the insertion index. When the shift needs a wider prefix, the siblings
// before the insertion point are renumbered from zero at the new width too.
//
// A name with an extension becomes an empty file, any other name a directory.
// Like Fix, a failure leaves the renames already applied in place
func Insert(newPath string, options ...Option) (*Report, error) {
	opts := newOptions(options)

	newPath = filepath.Clean(newPath)
	name := filepath.Base(newPath)
	parsed, err := ParseName(name)
	if err != nil {
		return nil, newInvalidNameError(name, newPath)
	}

	dir := filepath.Dir(newPath)
	report := newReport(dir, opts)
	logger := report.logger(opts.logger, "insert").With(slog.String("name", name))

	entries, err := listOrdered(opts.fs, dir)
	if err != nil {
		logger.Error("list directory", slog.Any("error", err))
		return nil, err
	}

	insertAt := parsed.Number()
	before, after := partition(entries, insertAt)

	used, needed := PaddingDigits(entries, opts.minWidth)
	needed = max(needed, DigitsFor(insertAt+len(after)))
	width := max(used, needed)

	plan, count, err := renumber(opts, logger, after, &insertAt, dir, width)
	report.record(plan, count)
	if err != nil {
		return report, err
	}

	if used < needed {
		plan, count, err = renumber(opts, logger, before, nil, dir, width)
		report.record(plan, count)
		if err != nil {
			return report, err
		}
	}

	report.Created = filepath.Join(dir, name)
	report.Kind = EntryKindFor(name)
	if !opts.dryRun {
		if err := createEntry(opts, report.Created, report.Kind); err != nil {
			logger.Error("create entry", slog.Any("error", err))
			return report, err
		}
	}

	logger.Info("inserted",
		slog.String("kind", string(report.Kind)),
		slog.Int("width", width),
		slog.Int("renamed", report.Renamed))

	return report, nil
}

// partition splits sorted entries around prefix at, keeping their order
func partition(entries []Entry, at int) (before, after []Entry) {
	for _, entry := range entries {
		if entry.Name.Number() >= at {
			after = append(after, entry)
		} else {
			before = append(before, entry)
		}
	}

	return before, after
}
