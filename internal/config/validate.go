package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if len(c.Scrape.Languages) == 0 {
		return errors.New("scrape.languages must list at least one language code")
	}
	if c.Scrape.Threads < 1 {
		return errors.New("scrape.threads must be at least 1")
	}
	if c.Scrape.Amount < 1 {
		return errors.New("scrape.amount must be at least 1")
	}
	if c.Scrape.HTTPTimeout < 1 {
		return errors.New("scrape.http_timeout must be at least 1 second")
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return errors.New("log_format must be console or json")
	}
	return nil
}
