// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the reconciliation pipeline: extract source names,
// build the target page index, match, and write the kept pages.
package core

import (
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/config"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/document"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/extract"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/matcher"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/report"
)

// Reconcile runs extraction and matching against already-open documents
// and assembles the run summary. It performs no document I/O of its own,
// which keeps it testable against fake page sources. OutputWritten is
// left false; Run sets it after persisting the output document.
func Reconcile(cfg *config.Config, observer *observability.StandardObserver, sourceDoc, targetDoc extract.PageTexter) (*report.Summary, *matcher.Report) {
	sourceExtractor := extract.NewSourceExtractor()
	sourceExtractor.SetObserver(observer)
	sourceNames := sourceExtractor.ExtractDocument(sourceDoc, cfg.Documents.SourcePDF)

	targetExtractor := extract.NewTargetExtractor(cfg.DropWords)
	targetExtractor.SetObserver(observer)
	pageIndex := targetExtractor.ExtractDocument(targetDoc, cfg.Documents.TargetPDF)

	m := matcher.New(matcher.Options{
		StrictCaseSensitive:  cfg.Matching.StrictCaseSensitive,
		EnableLooseFallback:  cfg.Matching.EnableLooseFallback,
		LooseCaseInsensitive: cfg.Matching.LooseCaseInsensitive,
	})
	m.SetObserver(observer)
	matchReport := m.Match(sourceNames, pageIndex, cfg.ManualKeep)

	summary := &report.Summary{
		SourcePath:             cfg.Documents.SourcePDF,
		TargetPath:             cfg.Documents.TargetPDF,
		OutputPath:             cfg.Documents.OutputPDF,
		TotalTargetPages:       targetDoc.PageCount(),
		SourceNameCount:        len(sourceNames),
		TargetEntryCount:       pageIndex.TotalEntries(),
		TargetPagesWithEntries: len(pageIndex),
		StrictCount:            matchReport.StrictCount,
		LooseCount:             matchReport.LooseCount,
		NoneCount:              matchReport.NoneCount,
		KeptPages:              matchReport.KeepPages,
		Unresolved:             matchReport.Unresolved(),
	}
	return summary, matchReport
}

// Run executes a full reconciliation: open both documents, reconcile,
// and write the kept pages to the output path. An empty keep set is a
// successful run that produces no output document; only document open
// and write failures return an error.
func Run(cfg *config.Config, observer *observability.StandardObserver) (*report.Summary, error) {
	if err := config.ValidateRunConfig(cfg); err != nil {
		return nil, err
	}

	sourceReader, err := document.OpenReader(cfg.Documents.SourcePDF)
	if err != nil {
		return nil, err
	}
	defer sourceReader.Close()
	sourceReader.SetObserver(observer)

	targetReader, err := document.OpenReader(cfg.Documents.TargetPDF)
	if err != nil {
		return nil, err
	}
	defer targetReader.Close()
	targetReader.SetObserver(observer)

	summary, matchReport := Reconcile(cfg, observer, sourceReader, targetReader)

	if len(matchReport.KeepPages) > 0 {
		writer := document.NewWriter()
		writer.SetObserver(observer)
		if err := writer.WritePages(cfg.Documents.TargetPDF, cfg.Documents.OutputPDF, matchReport.KeepPages); err != nil {
			return nil, err
		}
		summary.OutputWritten = true
	}

	return summary, nil
}
