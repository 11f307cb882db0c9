// Package models defines data structures for configuration and Reddit content.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for settings that normally live in the config file.
const (
	DefaultCommonWordsFile = "common-words.csv"
	DefaultDictionaryFile  = "/usr/share/dict/words"
	DefaultMinCount        = 2
	DefaultBaseURL         = "https://www.reddit.com"
)

// DefaultExcludedWords returns the substrings that disqualify a word from
// the rendered output. Markdown artifacts and moderation placeholders.
func DefaultExcludedWords() []string {
	return []string{"/", "--", "...", "deleted", ")x"}
}

// FileConfig holds settings read from an optional YAML config file.
// Zero values fall back to the defaults above.
type FileConfig struct {
	CommonWords string   `yaml:"common_words"`
	Dictionary  string   `yaml:"dictionary"`
	Excluded    []string `yaml:"excluded"`
	MinCount    int      `yaml:"min_count"`
	UserAgent   string   `yaml:"user_agent"`
	BaseURL     string   `yaml:"base_url"`
	DBPath      string   `yaml:"db_path"`
}

// DefaultFileConfig returns a config with every field at its default.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		CommonWords: DefaultCommonWordsFile,
		Dictionary:  DefaultDictionaryFile,
		Excluded:    DefaultExcludedWords(),
		MinCount:    DefaultMinCount,
		BaseURL:     DefaultBaseURL,
	}
}

// LoadFileConfig reads a YAML config file, filling unset fields with
// defaults. An empty path yields the defaults without touching disk; a
// named file must exist and parse.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.CommonWords == "" {
		cfg.CommonWords = DefaultCommonWordsFile
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = DefaultDictionaryFile
	}
	if cfg.Excluded == nil {
		cfg.Excluded = DefaultExcludedWords()
	}
	if cfg.MinCount == 0 {
		cfg.MinCount = DefaultMinCount
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}
