// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Document paths for a run
	Documents struct {
		SourcePDF string `yaml:"source_pdf"`
		TargetPDF string `yaml:"target_pdf"`
		OutputPDF string `yaml:"output_pdf"`
	} `yaml:"documents"`

	// Matching behavior
	Matching struct {
		StrictCaseSensitive  bool `yaml:"strict_case_sensitive"`
		EnableLooseFallback  bool `yaml:"enable_loose_fallback"`
		LooseCaseInsensitive bool `yaml:"loose_case_insensitive"`
	} `yaml:"matching"`

	// Target entries whose name contains one of these substrings
	// (case-insensitive) are don't-care tests and are dropped entirely
	DropWords []string `yaml:"drop_words"`

	// Exact target names whose pages are always kept, regardless of the
	// match outcome. Escape hatch for known extraction gaps.
	ManualKeep []string `yaml:"manual_keep"`

	// Default output settings
	Defaults struct {
		Verbose bool `yaml:"verbose"`
		Debug   bool `yaml:"debug"`
		NoColor bool `yaml:"no_color"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{}

	// Set default values
	config.Matching.StrictCaseSensitive = true
	config.Matching.EnableLooseFallback = true
	config.Matching.LooseCaseInsensitive = true
	config.DropWords = []string{"CONTY", "CRES", "P2P"}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store default values before unmarshaling
	defaultStrictCase := config.Matching.StrictCaseSensitive
	defaultLooseFallback := config.Matching.EnableLooseFallback
	defaultLooseCaseInsensitive := config.Matching.LooseCaseInsensitive
	defaultDropWords := config.DropWords

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file.
	// This handles the case where YAML unmarshaling sets bool fields to
	// false when they're not present in the config file.
	if !containsField(data, "matching", "strict_case_sensitive") {
		config.Matching.StrictCaseSensitive = defaultStrictCase
	}
	if !containsField(data, "matching", "enable_loose_fallback") {
		config.Matching.EnableLooseFallback = defaultLooseFallback
	}
	if !containsField(data, "matching", "loose_case_insensitive") {
		config.Matching.LooseCaseInsensitive = defaultLooseCaseInsensitive
	}
	if !containsField(data, "drop_words") {
		config.DropWords = defaultDropWords
	}

	return config, nil
}

// ValidateRunConfig checks that the configuration names all three documents.
// Called before a run, not at load time, so that partial configs plus CLI
// flag overrides remain usable.
func ValidateRunConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if config.Documents.SourcePDF == "" {
		return fmt.Errorf("source document path is required")
	}
	if config.Documents.TargetPDF == "" {
		return fmt.Errorf("target document path is required")
	}
	if config.Documents.OutputPDF == "" {
		return fmt.Errorf("output document path is required")
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("pdffilter.yaml") {
		return "pdffilter.yaml"
	}
	if fileExists("pdffilter.yml") {
		return "pdffilter.yml"
	}

	// Check for project-specific config in current directory
	if fileExists(".pdffilter.yaml") {
		return ".pdffilter.yaml"
	}
	if fileExists(".pdffilter.yml") {
		return ".pdffilter.yml"
	}

	// Check XDG config directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "pdffilter", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "pdffilter", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it returns
// a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}
