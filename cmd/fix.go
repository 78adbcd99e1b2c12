package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boostgo/orderx"
)

func newFixCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fix [directory]",
		Short: "Renumber all entries of a directory",
		Long: `Renumber every numerically prefixed entry of a directory so prefixes
run from 0 without gaps and share one zero-padded width.

Examples:
  # "1-intro", "3-setup" become "00-intro", "01-setup"
  orderx fix ./docs

  # Show what would change
  orderx fix ./docs --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := orderx.Fix(args[0], libraryOptions(cfg, cmd)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.DryRun {
				fmt.Fprintf(out, "Would fix %d files:\n", report.Renamed)
				printRenames(cmd, report.Renames)
				return nil
			}

			fmt.Fprintf(out, "Successfully fixed %d files!\n", report.Renamed)
			return nil
		},
	}
}

func printRenames(cmd *cobra.Command, renames []orderx.Rename) {
	for _, rename := range renames {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", rename.From, rename.To)
	}
}
