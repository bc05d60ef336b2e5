package main

import (
	"fmt"

	"github.com/jonathan/scholar-homepage/internal/pipeline"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the build inputs",
	Long:  "Loads the site config, rankings and bibliographies and checks them against their schemas without rendering anything.",
	RunE:  runValidate,
}

var validateInputs inputFlags

func init() {
	addInputFlags(validateCmd, &validateInputs)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &validateInputs)
	if err != nil {
		return err
	}

	inputs, err := pipeline.Load(commandContext(cmd), pipeline.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Inputs valid: %d papers, %d preprints, %d ranking rules\n",
		len(inputs.Papers), len(inputs.Preprints), len(inputs.Rankings))
	return nil
}
