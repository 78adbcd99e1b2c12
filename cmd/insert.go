package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boostgo/orderx"
)

func newInsertCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "insert [path]",
		Short: "Insert an entry, shifting the following entries",
		Long: `Create a new entry and increment the prefix of every entry at or after
its position. The prefix of the new name is the position. A name with an
extension is created as an empty file, anything else as a directory.

Examples:
  # "01-b", "02-c" become "02-b", "03-c", then "01-x.md" is created
  orderx insert ./docs/01-x.md

  # Insert a directory
  orderx insert ./docs/03-guides`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := orderx.Insert(args[0], libraryOptions(cfg, cmd)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.DryRun {
				fmt.Fprintf(out, "Would rename %d files:\n", report.Renamed)
				printRenames(cmd, report.Renames)
				fmt.Fprintf(out, "Would insert a new %s at %s\n", report.Kind, report.Created)
				return nil
			}

			fmt.Fprintf(out, "Successfully renamed %d files!\n", report.Renamed)
			fmt.Fprintf(out, "Successfully inserted a new %s!\n", report.Kind)
			return nil
		},
	}
}
