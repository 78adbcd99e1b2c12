package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/boostgo/orderx"
)

// Config holds settings resolved from flags, ORDERX_* env and .orderx.yaml
type Config struct {
	MinWidth int  `mapstructure:"min_width"`
	DryRun   bool `mapstructure:"dry_run"`
	Verbose  bool `mapstructure:"verbose"`
}

var flagKeys = map[string]string{
	"min_width": "min-width",
	"dry_run":   "dry-run",
	"verbose":   "verbose",
}

func loadConfig(v *viper.Viper, cmd *cobra.Command, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".orderx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetDefault("min_width", orderx.DefaultMinWidth)
	v.SetDefault("dry_run", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("ORDERX")
	v.AutomaticEnv()

	for key, flag := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.MinWidth < 1 {
		return nil, fmt.Errorf("min_width must be at least 1, got %d", cfg.MinWidth)
	}

	return &cfg, nil
}
