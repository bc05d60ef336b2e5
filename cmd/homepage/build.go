package main

import (
	"fmt"

	"github.com/jonathan/scholar-homepage/internal/config"
	"github.com/jonathan/scholar-homepage/internal/pipeline"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the homepage",
	Long:  "Loads the site config, rankings and bibliographies, classifies every publication by venue rank, and renders the homepage HTML.",
	RunE:  runBuild,
}

var (
	buildInputs       inputFlags
	buildTemplateFile string
	buildOutputFile   string
)

func init() {
	addInputFlags(buildCmd, &buildInputs)
	buildCmd.Flags().StringVarP(&buildTemplateFile, "template", "t", "", "Path to page template (default: built-in template)")
	buildCmd.Flags().StringVarP(&buildOutputFile, "out", "o", config.Default().Output, "Path to output HTML file")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, &buildInputs)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplateFile
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = buildOutputFile
	}

	result, err := pipeline.Run(commandContext(cmd), pipeline.Options{
		Config: cfg,
		Logger: logger,
		Out:    cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Build Success! Stats: Total=%d, CCF=%d\n", result.Stats.Total, result.Stats.CCFTotal)
	_, _ = fmt.Fprintf(out, "Output: %s\n", result.OutputPath)

	return nil
}
