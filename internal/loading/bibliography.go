package loading

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
	"github.com/nickng/bibtex"
)

// LoadBibliography parses a required BibTeX file into raw entries, in file order.
func LoadBibliography(path string) ([]types.BibEntry, error) {
	content, err := readRequired(path)
	if err != nil {
		return nil, err
	}
	return parseBibliography(path, content)
}

// LoadOptionalBibliography parses a BibTeX file that may be absent. A missing
// file yields no entries and no error.
func LoadOptionalBibliography(path string) ([]types.BibEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.BibEntry{}, nil
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return parseBibliography(path, content)
}

func parseBibliography(path string, content []byte) ([]types.BibEntry, error) {
	source := scanBibSource(content)
	if len(bytes.TrimSpace(source.text)) == 0 {
		return []types.BibEntry{}, nil
	}
	bib, err := bibtex.Parse(bytes.NewReader(source.text))
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to parse BibTeX %s", path),
			Cause:   err,
		}
	}
	if err := checkEntryCount(path, len(bib.Entries), source.records); err != nil {
		return nil, err
	}

	entries := make([]types.BibEntry, 0, len(bib.Entries))
	for _, e := range bib.Entries {
		fields := make(map[string]string, len(e.Fields))
		for name, value := range e.Fields {
			if value == nil {
				continue
			}
			fields[strings.ToLower(name)] = value.String()
		}
		entries = append(entries, types.BibEntry{
			Key:    e.CiteName,
			Type:   strings.ToLower(e.Type),
			Fields: fields,
		})
	}

	return entries, nil
}
