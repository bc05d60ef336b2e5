package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/scholar-homepage/internal/observability"
	"github.com/jonathan/scholar-homepage/internal/pipeline"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print publication statistics",
	Long:  "Classifies the published bibliography and prints the venue rank counters as JSON.",
	RunE:  runStats,
}

var statsInputs inputFlags

func init() {
	addInputFlags(statsCmd, &statsInputs)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &statsInputs)
	if err != nil {
		return err
	}

	inputs, err := pipeline.Load(commandContext(cmd), pipeline.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to load inputs: %w", err)
	}
	processed := pipeline.Process(inputs)

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		observability.NewPrinter(out).PrintStats(processed.Stats)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(processed.Stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	_, _ = fmt.Fprintln(out, string(jsonBytes))
	return nil
}
