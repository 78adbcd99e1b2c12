package orderx

import (
	"log/slog"

	"github.com/google/uuid"
)

func newReport(dir string, opts *options) *Report {
	return &Report{
		ID:        uuid.New(),
		Directory: dir,
		DryRun:    opts.dryRun,
	}
}

// record adds one renumbering pass. Renames always lists the whole plan;
// Renamed counts what was applied, or what would be in a dry run
func (r *Report) record(plan []Rename, applied int) {
	r.Renames = append(r.Renames, plan...)
	if r.DryRun {
		r.Renamed += len(plan)
		return
	}

	r.Renamed += applied
}

func (r *Report) logger(base *slog.Logger, op string) *slog.Logger {
	return base.With(
		slog.String("op", op),
		slog.String("id", r.ID.String()),
		slog.String("dir", r.Directory),
		slog.Bool("dry_run", r.DryRun),
	)
}
