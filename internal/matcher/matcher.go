// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher reconciles source test names against the target page
// index using strict-then-loose equality with manual overrides.
package matcher

import (
	"sort"
	"strings"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/extract"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/normalize"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
)

// Outcome classifies how a source name was resolved
type Outcome int

const (
	None Outcome = iota
	Strict
	Loose
)

func (o Outcome) String() string {
	switch o {
	case Strict:
		return "STRICT"
	case Loose:
		return "LOOSE"
	default:
		return "NONE"
	}
}

// Options controls matching behavior
type Options struct {
	// StrictCaseSensitive makes the strict tier compare names exactly;
	// when false both sides are lowercased first.
	StrictCaseSensitive bool

	// EnableLooseFallback allows the loose tier when strict finds nothing
	EnableLooseFallback bool

	// LooseCaseInsensitive lowercases loose keys
	LooseCaseInsensitive bool
}

// Result records the outcome for one source name. Pages is ascending and
// empty for None.
type Result struct {
	Name    string
	Outcome Outcome
	Pages   []int
}

// Report aggregates a full matching run
type Report struct {
	Results []Result

	// KeepPages is the deduplicated ascending union of all contributed
	// pages, including manual-keep overrides.
	KeepPages []int

	StrictCount int
	LooseCount  int
	NoneCount   int
}

// Unresolved returns the source names that matched nothing, in input order
func (r *Report) Unresolved() []string {
	var names []string
	for _, res := range r.Results {
		if res.Outcome == None {
			names = append(names, res.Name)
		}
	}
	return names
}

// Matcher resolves source names against a target page index
type Matcher struct {
	opts Options

	// Observability
	observer *observability.StandardObserver
}

// New creates a Matcher with the given options
func New(opts Options) *Matcher {
	return &Matcher{opts: opts}
}

// SetObserver sets the observability component
func (m *Matcher) SetObserver(observer *observability.StandardObserver) {
	m.observer = observer
}

// pageSet is a set of 1-based page numbers
type pageSet map[int]struct{}

// index holds the one-time lookup tables built from the page index: a
// strict table keyed by (optionally lowercased) exact name and a loose
// table keyed by the loose equality key. Both map to the set of pages
// containing a matching entry, so each source-name lookup is O(1) after
// the single build pass.
type index struct {
	strict pageTable
	loose  pageTable
	exact  pageTable // trimmed exact name -> pages, for manual keep
}

type pageTable map[string]pageSet

func (ps pageTable) add(key string, page int) {
	set, ok := ps[key]
	if !ok {
		set = make(pageSet)
		ps[key] = set
	}
	set[page] = struct{}{}
}

// buildIndex makes the strict/loose/exact lookup tables in one pass
func (m *Matcher) buildIndex(pages extract.PageIndex) *index {
	idx := &index{
		strict: make(pageTable),
		loose:  make(pageTable),
		exact:  make(pageTable),
	}
	for page, names := range pages {
		for _, name := range names {
			strictKey := name
			if !m.opts.StrictCaseSensitive {
				strictKey = strings.ToLower(name)
			}
			idx.strict.add(strictKey, page)

			if m.opts.EnableLooseFallback {
				idx.loose.add(normalize.LooseKey(name, m.opts.LooseCaseInsensitive), page)
			}

			idx.exact.add(strings.TrimSpace(name), page)
		}
	}
	return idx
}

// Match resolves every source name against the page index, strict tier
// first, loose tier only when strict found nothing. Manual-keep names are
// applied last as an unconditional union and do not affect the per-name
// outcome counts. A source name that resolves to zero pages is a normal,
// counted outcome, not an error.
func (m *Matcher) Match(sourceNames []string, pages extract.PageIndex, manualKeep []string) *Report {
	var finishTiming func(bool, map[string]interface{})
	if m.observer != nil {
		finishTiming = m.observer.StartTiming("matcher", "match", "")
	}

	idx := m.buildIndex(pages)
	report := &Report{}
	keep := make(pageSet)

	for _, name := range sourceNames {
		result := Result{Name: name, Outcome: None}

		strictKey := name
		if !m.opts.StrictCaseSensitive {
			strictKey = strings.ToLower(name)
		}
		if set, ok := idx.strict[strictKey]; ok && len(set) > 0 {
			result.Outcome = Strict
			result.Pages = sortedPages(set)
		} else if m.opts.EnableLooseFallback {
			looseKey := normalize.LooseKey(name, m.opts.LooseCaseInsensitive)
			if set, ok := idx.loose[looseKey]; ok && len(set) > 0 {
				result.Outcome = Loose
				result.Pages = sortedPages(set)
			}
		}

		switch result.Outcome {
		case Strict:
			report.StrictCount++
		case Loose:
			report.LooseCount++
		default:
			report.NoneCount++
		}
		for _, p := range result.Pages {
			keep[p] = struct{}{}
		}
		report.Results = append(report.Results, result)
	}

	// Manual overrides always win, independent of match outcomes
	for _, name := range manualKeep {
		if set, ok := idx.exact[strings.TrimSpace(name)]; ok {
			for p := range set {
				keep[p] = struct{}{}
			}
		}
	}

	report.KeepPages = sortedPages(keep)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"source_names": len(sourceNames),
			"strict":       report.StrictCount,
			"loose":        report.LooseCount,
			"none":         report.NoneCount,
			"kept_pages":   len(report.KeepPages),
		})
	}
	return report
}

func sortedPages(set pageSet) []int {
	pages := make([]int, 0, len(set))
	for p := range set {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
