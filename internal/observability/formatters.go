// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/scholar-homepage/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStats outputs the publication counters.
func (p *Printer) PrintStats(stats types.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:     %d\n", stats.Total))
	sb.WriteString(fmt.Sprintf("CCF:       %d (A: %d, B: %d)\n", stats.CCFTotal, stats.CCFA, stats.CCFB))
	sb.WriteString(fmt.Sprintf("JCR Q1:    %d\n", stats.JCRQ1))
	sb.WriteString(fmt.Sprintf("JCR Q2:    %d\n", stats.JCRQ2))
	p.printBox("PUBLICATION STATS", sb.String())
}

// PrintPublications outputs the first few publications of a list with their tags.
func (p *Printer) PrintPublications(title string, pubs []types.Publication) {
	if len(pubs) == 0 {
		p.printBox(title, "(none)")
		return
	}

	var sb strings.Builder
	count := min(len(pubs), maxItemsToShow)
	for i := 0; i < count; i++ {
		pub := pubs[i]
		sb.WriteString(fmt.Sprintf("%s  %s\n", pub.Year, pub.Title))
		if len(pub.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("      [%s] %s\n", strings.Join(pub.Tags, ", "), pub.Venue))
		} else {
			sb.WriteString(fmt.Sprintf("      %s\n", pub.Venue))
		}
	}
	if len(pubs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(pubs)-maxItemsToShow))
	}
	p.printBox(title, sb.String())
}

// PrintRankings outputs the ranking rules in precedence order.
func (p *Printer) PrintRankings(rankings types.Rankings) {
	var sb strings.Builder
	if len(rankings) == 0 {
		sb.WriteString("(no rules)\n")
	}
	for i, entry := range rankings {
		sb.WriteString(fmt.Sprintf("%2d. %s → %s\n", i+1, entry.Key, strings.Join(entry.Rule.Tags, ", ")))
	}
	p.printBox("RANKING RULES", sb.String())
}
