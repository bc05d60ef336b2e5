package classify

import (
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
	"golang.org/x/text/cases"
)

const (
	// DefaultColor is assigned to published records no rule matched.
	DefaultColor = "gray"
	// PreprintTag replaces the empty tag set of an unmatched preprint.
	PreprintTag = "Preprint"
)

// cleanedFields are consumed into Publication's own fields and not carried over.
var cleanedFields = map[string]struct{}{
	"title":  {},
	"author": {},
	"year":   {},
}

// Match returns the first rule, in dictionary order, whose key is contained in
// the venue name, ignoring case. Scanning stops at the first match.
func Match(rankings types.Rankings, venue string) (types.RankingRule, bool) {
	fold := cases.Fold()
	folded := fold.String(venue)
	for _, entry := range rankings {
		if strings.Contains(folded, fold.String(entry.Key)) {
			return entry.Rule, true
		}
	}
	return types.RankingRule{}, false
}

// Classify cleans a published entry and assigns its rank tags. An unmatched
// entry keeps an empty tag set and the default color.
func Classify(entry types.BibEntry, rankings types.Rankings) types.Publication {
	pub := clean(entry)
	pub.Color = DefaultColor
	if rule, ok := Match(rankings, pub.Venue); ok {
		pub.Tags = copyTags(rule.Tags)
		if rule.Color != "" {
			pub.Color = rule.Color
		}
	}
	return pub
}

// ClassifyPreprint cleans a preprint entry and assigns its rank tags. An
// unmatched preprint is tagged with PreprintTag only.
func ClassifyPreprint(entry types.BibEntry, rankings types.Rankings) types.Publication {
	pub := clean(entry)
	if rule, ok := Match(rankings, pub.Venue); ok {
		pub.Tags = copyTags(rule.Tags)
		pub.Color = rule.Color
	}
	if len(pub.Tags) == 0 {
		pub.Tags = []string{PreprintTag}
	}
	return pub
}

// ClassifyAll classifies published entries, preserving order.
func ClassifyAll(entries []types.BibEntry, rankings types.Rankings) []types.Publication {
	pubs := make([]types.Publication, 0, len(entries))
	for _, e := range entries {
		pubs = append(pubs, Classify(e, rankings))
	}
	return pubs
}

// ClassifyPreprints classifies preprint entries, preserving order.
func ClassifyPreprints(entries []types.BibEntry, rankings types.Rankings) []types.Publication {
	pubs := make([]types.Publication, 0, len(entries))
	for _, e := range entries {
		pubs = append(pubs, ClassifyPreprint(e, rankings))
	}
	return pubs
}

func clean(entry types.BibEntry) types.Publication {
	fields := make(map[string]string, len(entry.Fields))
	for name, value := range entry.Fields {
		if _, ok := cleanedFields[name]; ok {
			continue
		}
		fields[name] = value
	}

	return types.Publication{
		Key:    entry.Key,
		Type:   entry.Type,
		Title:  CleanTitle(entry.Field("title")),
		Author: CleanAuthors(entry.Field("author")),
		Venue:  VenueName(entry),
		Year:   Year(entry),
		Tags:   []string{},
		Fields: fields,
	}
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
