package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const fixtureSite = `
info:
  name: Jane Doe
bio: Jane builds things.
education:
  - degree: PhD
    school: Example University
`

const fixtureRankings = `
CVPR:
  tags: [CCF A]
  color: red
Pattern Recognition:
  tags: [CCF B, JCR Q1]
`

const fixturePapers = `
@inproceedings{a2023,
  title = {Fast Things},
  author = {Jane Doe and John Roe},
  booktitle = {Proceedings of CVPR},
  year = {2023}
}

@article{b2022,
  title = {Slow Things},
  author = {Jane Doe},
  journal = {Pattern Recognition},
  year = {2022}
}
`

// writeFixtures creates a data/ directory inside a temp dir and returns the
// temp dir and the input flag arguments pointing at it.
func writeFixtures(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}

	files := map[string]string{
		"config.yaml":   fixtureSite,
		"rankings.yaml": fixtureRankings,
		"papers.bib":    fixturePapers,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return dir, []string{
		"--config", filepath.Join(dataDir, "config.yaml"),
		"--rankings", filepath.Join(dataDir, "rankings.yaml"),
		"--papers", filepath.Join(dataDir, "papers.bib"),
		"--preprints", filepath.Join(dataDir, "preprints.bib"),
	}
}

// resetFlags restores every flag to its default so package-level command
// state does not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCLI runs the root command in-process and returns its stdout.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}
