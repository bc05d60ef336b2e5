package aggregate

import (
	"sort"

	"github.com/jonathan/scholar-homepage/internal/classify"
	"github.com/jonathan/scholar-homepage/internal/types"
)

// SortByYear orders publications most recent first. Years compare as strings
// (YYYY format, lexicographic comparison works); an empty year sorts as
// classify.UnknownYear. Records with equal years keep their input order.
func SortByYear(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return sortYear(pubs[i]) > sortYear(pubs[j])
	})
}

func sortYear(p types.Publication) string {
	if p.Year == "" {
		return classify.UnknownYear
	}
	return p.Year
}
