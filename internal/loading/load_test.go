package loading

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/scholar-homepage/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSiteConfig = `
info:
  name: Jane Doe
  title: Associate Professor
bio: Jane works on computer vision.
education:
  - degree: PhD
    school: Example University
    year: "2015"
`

const testRankings = `
IEEE Transactions on Pattern Analysis:
  tags: [CCF A, JCR Q1]
  color: red
CVPR:
  tags: [CCF A]
  color: red
Pattern Recognition:
  tags: [CCF B, JCR Q1]
  color: orange
`

const testPapers = `
@article{doe2024tpami,
  title = {A {Deep} Study},
  author = {Jane Doe and John Roe},
  journal = {IEEE Transactions on Pattern Analysis and Machine Intelligence},
  year = {2024}
}

@inproceedings{doe2023cvpr,
  title = {Fast Things},
  author = {Jane Doe},
  booktitle = {Proceedings of CVPR},
  year = {2023},
  url = {https://example.com/fast}
}
`

const testPreprints = `
@misc{doe2025arxiv,
  title = {Preprinted Work},
  author = {Jane Doe},
  year = {2025}
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeInputs(t *testing.T) (Paths, string) {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Config:    writeFile(t, dir, "config.yaml", testSiteConfig),
		Rankings:  writeFile(t, dir, "rankings.yaml", testRankings),
		Papers:    writeFile(t, dir, "papers.bib", testPapers),
		Preprints: writeFile(t, dir, "preprints.bib", testPreprints),
	}, dir
}

func TestLoad_AllInputs(t *testing.T) {
	paths, _ := writeInputs(t)

	inputs, err := Load(paths)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", inputs.Site.Info["name"])
	assert.Equal(t, "Jane works on computer vision.", inputs.Site.Bio)
	assert.Nil(t, inputs.Site.Activities)

	require.Len(t, inputs.Rankings, 3)
	require.Len(t, inputs.Papers, 2)
	require.Len(t, inputs.Preprints, 1)
	assert.Equal(t, "doe2025arxiv", inputs.Preprints[0].Key)
}

func TestLoad_MissingPreprintsIsNotAnError(t *testing.T) {
	paths, dir := writeInputs(t)
	paths.Preprints = filepath.Join(dir, "does_not_exist.bib")

	inputs, err := Load(paths)
	require.NoError(t, err)
	require.NotNil(t, inputs.Preprints)
	assert.Empty(t, inputs.Preprints)
}

func TestLoad_NoPreprintsPath(t *testing.T) {
	paths, _ := writeInputs(t)
	paths.Preprints = ""

	inputs, err := Load(paths)
	require.NoError(t, err)
	assert.Empty(t, inputs.Preprints)
}

func TestLoad_MissingRequiredFiles(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Paths, dir string)
	}{
		{"config", func(p *Paths, dir string) { p.Config = filepath.Join(dir, "nope.yaml") }},
		{"rankings", func(p *Paths, dir string) { p.Rankings = filepath.Join(dir, "nope.yaml") }},
		{"papers", func(p *Paths, dir string) { p.Papers = filepath.Join(dir, "nope.bib") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, dir := writeInputs(t)
			tt.mutate(&paths, dir)

			_, err := Load(paths)
			require.Error(t, err)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Contains(t, notFound.Path, "nope")
			assert.True(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestLoadSiteConfig_WithActivities(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", testSiteConfig+"activities:\n  - PC member, CVPR 2024\n")

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []any{"PC member, CVPR 2024"}, cfg.Activities)
}

func TestLoadSiteConfig_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "info:\n  name: Jane\n")

	_, err := LoadSiteConfig(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "schema validation failed")
}

func TestLoadRankings_PreservesDocumentOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rankings.yaml", "Zeta:\n  tags: [CCF C]\nAlpha:\n  tags: [CCF A]\nMu:\n  tags: [JCR Q2]\n  color: blue\n")

	rankings, err := LoadRankings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mu"}, rankings.Keys())
	assert.Equal(t, types.RankingRule{Tags: []string{"JCR Q2"}, Color: "blue"}, rankings[2].Rule)
	assert.Empty(t, rankings[0].Rule.Color)
}

func TestLoadRankings_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rankings.yaml", "")

	rankings, err := LoadRankings(path)
	require.NoError(t, err)
	assert.Empty(t, rankings)
}

func TestLoadRankings_DuplicateKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rankings.yaml", "CVPR:\n  tags: [CCF A]\nCVPR:\n  tags: [CCF C]\n")

	_, err := LoadRankings(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "already defined")
}

func TestParseRankings_NotAMapping(t *testing.T) {
	_, err := parseRankings([]byte("- CVPR\n- ICCV\n"))
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadBibliography_Fields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "papers.bib", testPapers)

	entries, err := LoadBibliography(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "doe2024tpami", first.Key)
	assert.Equal(t, "article", first.Type)
	assert.Contains(t, first.Field("journal"), "Pattern Analysis")
	assert.Equal(t, "2024", first.Field("year"))
	assert.Empty(t, first.Field("booktitle"))

	second := entries[1]
	assert.Equal(t, "inproceedings", second.Type)
	assert.Contains(t, second.Field("booktitle"), "CVPR")
	assert.Equal(t, "https://example.com/fast", second.Field("url"))
}

func TestLoadBibliography_FileNotFound(t *testing.T) {
	_, err := LoadBibliography("nonexistent_file.bib")
	require.Error(t, err)

	notFound, ok := err.(*NotFoundError)
	require.True(t, ok, "error should be NotFoundError type")
	assert.Contains(t, notFound.Error(), "required file not found")
}

func TestLoadOptionalBibliography_Present(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "preprints.bib", testPreprints)

	entries, err := LoadOptionalBibliography(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "misc", entries[0].Type)
}

func TestLoadBibliography_CommentLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"exporter header", "% Encoding: UTF-8\n\n" + testPapers},
		{"comment between entries", `
@article{doe2024tpami,
  title = {A {Deep} Study},
  author = {Jane Doe and John Roe},
  journal = {IEEE Transactions on Pattern Analysis and Machine Intelligence},
  year = {2024}
}
% conference papers
  % indented note
@inproceedings{doe2023cvpr,
  title = {Fast Things},
  author = {Jane Doe},
  booktitle = {Proceedings of CVPR},
  year = {2023}
}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "papers.bib", tt.content)

			entries, err := LoadBibliography(path)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "doe2024tpami", entries[0].Key)
			assert.Equal(t, "doe2023cvpr", entries[1].Key)
		})
	}
}

func TestLoadBibliography_IgnoresTextOutsideEntries(t *testing.T) {
	content := "Some free text outside entries.\nContact jane@example.com for updates.\n" +
		"@comment{exported by a reference manager}\n" +
		testPapers +
		"\ntrailing notes\n"
	path := writeFile(t, t.TempDir(), "papers.bib", content)

	entries, err := LoadBibliography(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "doe2024tpami", entries[0].Key)
}

func TestLoadBibliography_OnlyComments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "papers.bib", "% Encoding: UTF-8\n% nothing yet\n")

	entries, err := LoadBibliography(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScanBibSource(t *testing.T) {
	src := []byte(`% header
free text
@String{cvpr = "CVPR"}
@preamble{"\newcommand{\x}{x}"}
@Comment{ignored {nested} block}
@article{a, title = {A}, year = {2020}}
note jane@example.com
@misc(b, title = "Paren (entry)", year = {2021})
`)

	source := scanBibSource(src)
	assert.Equal(t, 2, source.records)

	text := string(source.text)
	assert.Contains(t, text, `@String{cvpr = "CVPR"}`)
	assert.Contains(t, text, "@article{a, title = {A}, year = {2020}}")
	assert.Contains(t, text, `@misc{b, title = "Paren (entry)", year = {2021}}`)
	assert.NotContains(t, text, "header")
	assert.NotContains(t, text, "free text")
	assert.NotContains(t, text, "preamble")
	assert.NotContains(t, text, "ignored")
	assert.NotContains(t, text, "example.com")
}

func TestCheckEntryCount(t *testing.T) {
	assert.NoError(t, checkEntryCount("papers.bib", 2, 2))
	assert.NoError(t, checkEntryCount("papers.bib", 0, 0))

	err := checkEntryCount("papers.bib", 1, 2)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "parsed 1 of 2 entries")
}
