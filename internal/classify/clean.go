// Package classify cleans raw bibliography entries and tags them by venue rank.
package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
)

const (
	// UnknownVenue is used when an entry has neither a journal nor a booktitle.
	UnknownVenue = "Unknown Venue"
	// UnknownYear sorts entries without a year after every dated entry.
	UnknownYear = "0000"
)

var (
	// authorSeparator matches the BibTeX name separator "and", in any case, as a whole word.
	authorSeparator = regexp.MustCompile(`(?i)\s+and\s+`)
	// lineBreak matches a newline together with the indentation around it.
	lineBreak = regexp.MustCompile(`[ \t]*\r?\n[ \t]*`)
)

// VenueName returns the journal, else the booktitle, else UnknownVenue.
func VenueName(entry types.BibEntry) string {
	if journal := strings.TrimSpace(entry.Field("journal")); journal != "" {
		return journal
	}
	if booktitle := strings.TrimSpace(entry.Field("booktitle")); booktitle != "" {
		return booktitle
	}
	return UnknownVenue
}

// CleanTitle strips literal braces from a BibTeX title.
func CleanTitle(title string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(title)
}

// CleanAuthors turns "A and B and C" into "A, B, C" and joins wrapped lines
// with single spaces.
func CleanAuthors(author string) string {
	author = lineBreak.ReplaceAllString(author, " ")
	return authorSeparator.ReplaceAllString(author, ", ")
}

// Year returns the entry's year, or UnknownYear when absent.
func Year(entry types.BibEntry) string {
	if year := strings.TrimSpace(entry.Field("year")); year != "" {
		return year
	}
	return UnknownYear
}
