package orderx

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// PlanRenumber computes the renames that give entries consecutive prefixes
// padded to width digits. Targets are the entry positions when start is nil,
// and *start+1+position otherwise. Entries whose name would not change are
// left out. The plan is in entry order and touches nothing
func PlanRenumber(entries []Entry, start *int, dir string, width int) []Rename {
	plan := make([]Rename, 0, len(entries))
	for position, entry := range entries {
		target := position
		if start != nil {
			target = *start + 1 + position
		}

		newName := entry.Name.Renamed(target, width)
		if newName == entry.Name.String() {
			continue
		}

		plan = append(plan, Rename{
			From:     entry.Name.String(),
			To:       newName,
			FromPath: entry.Path,
			ToPath:   filepath.Join(dir, newName),
		})
	}

	return plan
}

// Renumber renames entries as planned by PlanRenumber and returns how many
// entries were renamed. Renames run from the last entry to the first; a
// rename whose destination still holds another entry waiting to be renamed
// moves that entry first. Existing names outside the plan are never
// overwritten. There is no rollback: on failure the renames already done stay
// and their count is returned along with the error
func Renumber(entries []Entry, start *int, dir string, width int, options ...Option) (int, error) {
	opts := newOptions(options)
	plan, count, err := renumber(opts, opts.logger, entries, start, dir, width)
	if opts.dryRun {
		return len(plan), err
	}

	return count, err
}

func renumber(opts *options, logger *slog.Logger, entries []Entry, start *int, dir string, width int) ([]Rename, int, error) {
	plan := PlanRenumber(entries, start, dir, width)
	if opts.dryRun || len(plan) == 0 {
		return plan, 0, nil
	}

	r := newRenamer(opts.fs, logger, plan)
	if err := r.check(); err != nil {
		return plan, 0, err
	}

	err := r.apply()
	return plan, r.count, err
}

type renameState uint8

const (
	renamePending renameState = iota
	renameVisiting
	renameDone
)

type renamer struct {
	fs      afero.Fs
	logger  *slog.Logger
	plan    []Rename
	sources map[string]int
	state   []renameState
	count   int
}

func newRenamer(fs afero.Fs, logger *slog.Logger, plan []Rename) *renamer {
	sources := make(map[string]int, len(plan))
	for i, rename := range plan {
		sources[filepath.Clean(rename.FromPath)] = i
	}

	return &renamer{
		fs:      fs,
		logger:  logger,
		plan:    plan,
		sources: sources,
		state:   make([]renameState, len(plan)),
	}
}

// check refuses destinations held by anything the plan does not move away.
// All stats happen before the first rename
func (r *renamer) check() error {
	for _, rename := range r.plan {
		if _, ok := r.sources[filepath.Clean(rename.ToPath)]; ok {
			continue
		}

		exists, err := afero.Exists(r.fs, rename.ToPath)
		if err != nil {
			return newStatDestinationError(rename.FromPath, rename.ToPath, err)
		}
		if exists {
			return newDestinationExistsError(rename.FromPath, rename.ToPath)
		}
	}

	return nil
}

func (r *renamer) apply() error {
	for i := len(r.plan) - 1; i >= 0; i-- {
		if err := r.applyAt(i); err != nil {
			return err
		}
	}

	return nil
}

func (r *renamer) applyAt(i int) error {
	rename := r.plan[i]
	switch r.state[i] {
	case renameDone:
		return nil
	case renameVisiting:
		return newRenameCycleError(rename.FromPath, rename.ToPath)
	}

	r.state[i] = renameVisiting
	if j, ok := r.sources[filepath.Clean(rename.ToPath)]; ok && j != i {
		if err := r.applyAt(j); err != nil {
			return err
		}
	}

	if err := r.fs.Rename(rename.FromPath, rename.ToPath); err != nil {
		r.logger.Error("rename failed",
			slog.String("from", rename.From),
			slog.String("to", rename.To),
			slog.Int("renamed", r.count),
			slog.Any("error", err))
		return newRenameEntryError(rename.FromPath, rename.ToPath, err)
	}

	r.state[i] = renameDone
	r.count++
	r.logger.Debug("renamed", slog.String("from", rename.From), slog.String("to", rename.To))

	return nil
}
