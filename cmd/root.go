package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/boostgo/orderx"
)

// NewRootCommand builds the orderx command tree with its own viper instance
func NewRootCommand() *cobra.Command {
	v := viper.New()
	cfg := &Config{MinWidth: orderx.DefaultMinWidth}
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "orderx",
		Short: "Keep numerically prefixed names in order",
		Long: `orderx manages ordered, numerically prefixed names inside a directory
such as "01-intro.md" and "02-setup.md".

Commands:
  fix       Renumber all entries to a gapless, zero-padded sequence
  insert    Create a new entry at a position and shift the following ones
  list      Show the managed entries in order`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(v, cmd, configFile)
			if err != nil {
				return err
			}

			*cfg = *loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default .orderx.yaml in . or $HOME)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "show the renames without applying them")
	rootCmd.PersistentFlags().Int("min-width", orderx.DefaultMinWidth, "minimum prefix width")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every rename")

	rootCmd.AddCommand(
		newFixCommand(cfg),
		newInsertCommand(cfg),
		newListCommand(cfg),
	)

	return rootCmd
}

// Execute runs the command tree and prints a failure to stderr
func Execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// libraryOptions turns the resolved configuration into orderx options
func libraryOptions(cfg *Config, cmd *cobra.Command) []orderx.Option {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	options := []orderx.Option{
		orderx.WithLogger(logger),
		orderx.WithMinWidth(cfg.MinWidth),
	}
	if cfg.DryRun {
		options = append(options, orderx.WithDryRun())
	}

	return options
}
