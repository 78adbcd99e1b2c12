package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boostgo/orderx"
)

func newListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list [directory]",
		Short: "List managed entries in prefix order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := orderx.ListOrdered(args[0], libraryOptions(cfg, cmd)...)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				name := entry.Name.String()
				if entry.IsDir {
					name += "/"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", entry.Name.Number(), name)
			}

			return nil
		},
	}
}
