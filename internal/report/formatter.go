// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report renders run summaries for the reconciliation pipeline.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Summary holds the aggregate results of one reconciliation run
type Summary struct {
	SourcePath string
	TargetPath string
	OutputPath string

	TotalTargetPages int
	SourceNameCount  int

	// TargetEntryCount counts captured entries after drop-word filtering
	TargetEntryCount int

	// TargetPagesWithEntries counts pages holding at least one entry
	TargetPagesWithEntries int

	StrictCount int
	LooseCount  int
	NoneCount   int

	KeptPages  []int
	Unresolved []string

	// OutputWritten is false when the keep set was empty and no output
	// document was produced. That is a successful run, reported distinctly.
	OutputWritten bool
}

// FormatterOptions controls summary rendering
type FormatterOptions struct {
	Verbose bool
	NoColor bool
}

// Formatter implements text-based summary formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

// Format renders the run summary as human-readable text
func (f *Formatter) Format(s *Summary, options FormatterOptions) string {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprint("=== RESULT ===") + "\n")
	fmt.Fprintf(&builder, "Total target pages      : %d\n", s.TotalTargetPages)
	fmt.Fprintf(&builder, "Target tests captured   : %d on %d pages\n", s.TargetEntryCount, s.TargetPagesWithEntries)
	fmt.Fprintf(&builder, "Source names total      : %d\n", s.SourceNameCount)
	fmt.Fprintf(&builder, "Strict matches          : %s\n", f.countColor(s.StrictCount, "green").Sprintf("%d", s.StrictCount))
	fmt.Fprintf(&builder, "Loose matches           : %s\n", f.countColor(s.LooseCount, "yellow").Sprintf("%d", s.LooseCount))
	fmt.Fprintf(&builder, "No matches              : %s\n", f.countColor(s.NoneCount, "red").Sprintf("%d", s.NoneCount))
	fmt.Fprintf(&builder, "Kept pages (matched)    : %d\n", len(s.KeptPages))

	if s.OutputWritten {
		fmt.Fprintf(&builder, "Wrote: %s\n", f.colors["green"].Sprint(s.OutputPath))
	} else {
		builder.WriteString(f.colors["yellow"].Sprint("No pages matched — output document not written.") + "\n")
	}

	if options.Verbose {
		if len(s.KeptPages) > 0 {
			fmt.Fprintf(&builder, "Pages: %s\n", joinPages(s.KeptPages))
		}
		if len(s.Unresolved) > 0 {
			builder.WriteString(f.colors["red"].Sprint("Unresolved source names:") + "\n")
			for _, name := range s.Unresolved {
				fmt.Fprintf(&builder, "  - %s\n", name)
			}
		}
	}

	return builder.String()
}

// countColor colors a count only when it is non-zero
func (f *Formatter) countColor(count int, name string) *color.Color {
	if count == 0 {
		return f.colors["cyan"]
	}
	return f.colors[name]
}

func joinPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ", ")
}
