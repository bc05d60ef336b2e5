// Package aggregate folds classified publications into summary counters and
// orders them for display.
package aggregate

import (
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
)

// Compute counts published records and their rank tags. Each tag is checked
// against every pattern independently, so "CCF A" counts toward both
// CCFTotal and CCFA.
func Compute(published []types.Publication) types.Stats {
	var stats types.Stats
	for _, pub := range published {
		stats.Total++
		for _, tag := range pub.Tags {
			if strings.Contains(tag, "CCF") {
				stats.CCFTotal++
			}
			if strings.Contains(tag, "CCF A") {
				stats.CCFA++
			}
			if strings.Contains(tag, "CCF B") {
				stats.CCFB++
			}
			if strings.Contains(tag, "JCR Q1") {
				stats.JCRQ1++
			}
			if strings.Contains(tag, "JCR Q2") {
				stats.JCRQ2++
			}
		}
	}
	return stats
}
