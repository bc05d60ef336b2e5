package loading

import (
	"github.com/jonathan/scholar-homepage/internal/types"
)

// Paths locates the build inputs.
type Paths struct {
	Config    string
	Rankings  string
	Papers    string
	Preprints string // optional
}

// Inputs is everything read from disk for one build.
type Inputs struct {
	Site      *types.SiteConfig
	Rankings  types.Rankings
	Papers    []types.BibEntry
	Preprints []types.BibEntry
}

// Load reads all inputs. The config, rankings and papers files are required;
// the preprints file is optional.
func Load(paths Paths) (*Inputs, error) {
	site, err := LoadSiteConfig(paths.Config)
	if err != nil {
		return nil, err
	}

	rankings, err := LoadRankings(paths.Rankings)
	if err != nil {
		return nil, err
	}

	papers, err := LoadBibliography(paths.Papers)
	if err != nil {
		return nil, err
	}

	preprints := []types.BibEntry{}
	if paths.Preprints != "" {
		preprints, err = LoadOptionalBibliography(paths.Preprints)
		if err != nil {
			return nil, err
		}
	}

	return &Inputs{
		Site:      site,
		Rankings:  rankings,
		Papers:    papers,
		Preprints: preprints,
	}, nil
}
