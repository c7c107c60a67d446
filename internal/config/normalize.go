package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	// Requested languages are compared lower-cased throughout; do it once.
	languages := make([]string, 0, len(c.Scrape.Languages))
	for _, lang := range c.Scrape.Languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	c.Scrape.Languages = languages

	c.Scrape.UserAgent = strings.TrimSpace(c.Scrape.UserAgent)
	if c.Scrape.UserAgent == "" {
		c.Scrape.UserAgent = defaultUserAgent
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}

	if c.Ledger.Path, err = ExpandPath(c.Ledger.Path); err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = filepath.Join(c.Paths.LogDir, "runs.db")
	}
	return nil
}
