// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Frosty-STI/PDF-Text-Extractor/internal/config"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/core"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/document"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/observability"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/report"
	"github.com/Frosty-STI/PDF-Text-Extractor/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile  string
	sourcePDF   string
	targetPDF   string
	outputPDF   string
	verbose     bool
	debug       bool
	noColor     bool
	showVersion bool
}

func parseFlags() *configFlags {
	flags := &configFlags{}
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (searches standard locations when empty)")
	flag.StringVar(&flags.sourcePDF, "source", "", "Source specification PDF (overrides config)")
	flag.StringVar(&flags.targetPDF, "target", "", "Target report PDF (overrides config)")
	flag.StringVar(&flags.outputPDF, "output", "", "Filtered output PDF (overrides config)")
	flag.BoolVar(&flags.verbose, "verbose", false, "List kept pages and unresolved names in the summary")
	flag.BoolVar(&flags.debug, "debug", false, "Emit JSON operation records to stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version information and exit")
	flag.Parse()
	return flags
}

// resolveConfig merges file configuration with flag overrides
func resolveConfig(flags *configFlags) *config.Config {
	cfg := config.LoadConfigOrDefault(flags.configFile)

	if flags.sourcePDF != "" {
		cfg.Documents.SourcePDF = flags.sourcePDF
	}
	if flags.targetPDF != "" {
		cfg.Documents.TargetPDF = flags.targetPDF
	}
	if flags.outputPDF != "" {
		cfg.Documents.OutputPDF = flags.outputPDF
	}
	if flags.verbose {
		cfg.Defaults.Verbose = true
	}
	if flags.debug {
		cfg.Defaults.Debug = true
	}
	if flags.noColor {
		cfg.Defaults.NoColor = true
	}
	return cfg
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	cfg := resolveConfig(flags)

	// Colors only make sense on a terminal
	if cfg.Defaults.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	level := observability.Metrics
	if cfg.Defaults.Debug {
		level = observability.Debug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	summary, err := core.Run(cfg, observer)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	formatter := report.NewFormatter()
	fmt.Print(formatter.Format(summary, report.FormatterOptions{
		Verbose: cfg.Defaults.Verbose,
		NoColor: cfg.Defaults.NoColor,
	}))
}

// printError reports a fatal failure with its classification
func printError(err error) {
	switch {
	case errors.Is(err, document.ErrDocumentOpen):
		fmt.Fprintf(os.Stderr, "Error: cannot open document: %v\n", err)
	case errors.Is(err, document.ErrDocumentWrite):
		fmt.Fprintf(os.Stderr, "Error: cannot write output document: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
