// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Matching.StrictCaseSensitive {
		t.Error("expected strict matching to default to case sensitive")
	}
	if !cfg.Matching.EnableLooseFallback {
		t.Error("expected loose fallback to default to enabled")
	}
	if !cfg.Matching.LooseCaseInsensitive {
		t.Error("expected loose matching to default to case insensitive")
	}
	if len(cfg.DropWords) == 0 {
		t.Error("expected default drop words to be set")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
documents:
  source_pdf: spec.pdf
  target_pdf: report.pdf
  output_pdf: filtered.pdf
drop_words:
  - DEMO
manual_keep:
  - Legacy Diagnostic
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Documents.SourcePDF != "spec.pdf" {
		t.Errorf("expected source_pdf=spec.pdf, got %q", cfg.Documents.SourcePDF)
	}
	if len(cfg.DropWords) != 1 || cfg.DropWords[0] != "DEMO" {
		t.Errorf("expected drop_words=[DEMO], got %v", cfg.DropWords)
	}
	if len(cfg.ManualKeep) != 1 || cfg.ManualKeep[0] != "Legacy Diagnostic" {
		t.Errorf("expected manual_keep=[Legacy Diagnostic], got %v", cfg.ManualKeep)
	}
	// Bool defaults must survive a file that doesn't mention them
	if !cfg.Matching.StrictCaseSensitive || !cfg.Matching.EnableLooseFallback {
		t.Error("matching defaults should be restored when absent from file")
	}
}

func TestLoadConfig_ExplicitFalseRespected(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
matching:
  strict_case_sensitive: false
  enable_loose_fallback: false
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matching.StrictCaseSensitive {
		t.Error("explicit strict_case_sensitive=false should be respected")
	}
	if cfg.Matching.EnableLooseFallback {
		t.Error("explicit enable_loose_fallback=false should be respected")
	}
	if !cfg.Matching.LooseCaseInsensitive {
		t.Error("unset loose_case_insensitive should keep its default")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestValidateRunConfig(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		target  string
		output  string
		wantErr bool
	}{
		{"all paths set", "a.pdf", "b.pdf", "c.pdf", false},
		{"missing source", "", "b.pdf", "c.pdf", true},
		{"missing target", "a.pdf", "", "c.pdf", true},
		{"missing output", "a.pdf", "b.pdf", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _ := LoadConfig("")
			cfg.Documents.SourcePDF = tc.source
			cfg.Documents.TargetPDF = tc.target
			cfg.Documents.OutputPDF = tc.output
			err := ValidateRunConfig(cfg)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRunConfig_Nil(t *testing.T) {
	if err := ValidateRunConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
