package config

const (
	defaultOutputDir   = "~/.local/share/subscrape/output"
	defaultLogDir      = "~/.local/share/subscrape/logs"
	defaultThreads     = 1
	defaultAmount      = 100
	defaultHTTPTimeout = 10
	defaultUserAgent   = "subscrape/dev"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Scrape: Scrape{
			Languages:   []string{"en"},
			Threads:     defaultThreads,
			Amount:      defaultAmount,
			HTTPTimeout: defaultHTTPTimeout,
			UserAgent:   defaultUserAgent,
		},
		Ledger: Ledger{
			Enabled: true,
		},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}
