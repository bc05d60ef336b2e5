// Package main provides the entry point for the homepage builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/scholar-homepage/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose      bool
	settingsPath string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Static academic homepage builder",
	Long: `homepage builds a personal academic homepage from a site config, a venue
ranking dictionary and BibTeX bibliographies of published work and preprints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed summaries and debug logs")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to a JSON settings file (default $HOMEPAGE_SETTINGS)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
