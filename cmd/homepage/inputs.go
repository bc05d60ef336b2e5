package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/scholar-homepage/internal/config"
	"github.com/spf13/cobra"
)

// inputFlags are the path flags shared by every command that reads the inputs.
type inputFlags struct {
	config    string
	rankings  string
	papers    string
	preprints string
}

func addInputFlags(cmd *cobra.Command, f *inputFlags) {
	defaults := config.Default()
	cmd.Flags().StringVarP(&f.config, "config", "c", defaults.Config, "Path to site config YAML")
	cmd.Flags().StringVarP(&f.rankings, "rankings", "r", defaults.Rankings, "Path to venue rankings YAML")
	cmd.Flags().StringVarP(&f.papers, "papers", "p", defaults.Papers, "Path to published BibTeX file")
	cmd.Flags().StringVar(&f.preprints, "preprints", defaults.Preprints, "Path to preprint BibTeX file (optional)")
}

// resolveConfig layers explicitly set flags over the settings file over the defaults.
func resolveConfig(cmd *cobra.Command, f *inputFlags) (config.Config, error) {
	cfg := config.Default()

	path := settingsPath
	if path == "" {
		path = os.Getenv(config.SettingsEnv)
	}
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load settings: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(config.Default())
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.Config = f.config
	}
	if flags.Changed("rankings") {
		cfg.Rankings = f.rankings
	}
	if flags.Changed("papers") {
		cfg.Papers = f.papers
	}
	if flags.Changed("preprints") {
		cfg.Preprints = f.preprints
	}
	if verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
