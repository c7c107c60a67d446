package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/j-nivekk/miscdataworks/internal/aggregate"
	"github.com/j-nivekk/miscdataworks/internal/config"
	"github.com/j-nivekk/miscdataworks/internal/fileutil"
	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/report"
	"github.com/j-nivekk/miscdataworks/internal/runstore"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

const lockFileName = ".subscrape.lock"

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag   string
		languageFlag string
		kindFlag     string
		amountFlag   int
		stripFlag    bool
		threadsFlag  int
		formatFlag   string
		groupFlag    string
	)

	cmd := &cobra.Command{
		Use:   "scrape <input.ndjson>",
		Short: "Fetch subtitle or caption tracks for every record in a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			kind, err := record.ParseKind(kindFlag)
			if err != nil {
				return err
			}
			mode, err := aggregate.ParseMode(formatFlag)
			if err != nil {
				return err
			}
			if groupFlag != "" && mode != aggregate.ModeTree {
				return fmt.Errorf("--group applies to the text format only")
			}

			languages := parseLanguages(languageFlag)
			if len(languages) == 0 {
				languages = cfg.Scrape.Languages
			}
			if len(languages) == 0 {
				return fmt.Errorf("no languages requested: pass --lang or set scrape.languages in the config")
			}
			warnUnknownLanguages(logger, languages)

			outputDir := strings.TrimSpace(outputFlag)
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}
			outputDir, err = config.ExpandPath(outputDir)
			if err != nil {
				return err
			}
			if err := fileutil.EnsureDir(outputDir); err != nil {
				return err
			}

			lock := flock.New(filepath.Join(outputDir, lockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire output lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another scrape is writing to %s", outputDir)
			}
			defer func() { _ = lock.Unlock() }()

			started := time.Now()
			records, err := record.ReadFile(args[0], logger)
			if err != nil {
				return err
			}
			logger.Info("dataset loaded", "file", args[0], "records", len(records))

			amount := amountFlag
			if amount == 0 {
				amount = cfg.Scrape.Amount
			}
			threads := threadsFlag
			if threads <= 0 {
				threads = cfg.Scrape.Threads
			}

			fetcher := scrape.NewFetcher(
				time.Duration(cfg.Scrape.HTTPTimeout)*time.Second,
				cfg.Scrape.UserAgent,
			)
			scheduler := scrape.NewScheduler(fetcher, logger)

			truncated := scrape.Truncate(records, amount)
			results := scheduler.Run(cmd.Context(), records, scrape.Options{
				Languages: languages,
				Kind:      kind,
				Threads:   threads,
				Amount:    amount,
				Strip:     stripFlag,
				Progress:  newProgressFunc(len(truncated)*len(languages), "scraping"),
			})

			artifact, err := aggregate.Write(truncated, results, aggregate.Options{
				Mode:      mode,
				Kind:      kind,
				Languages: languages,
				OutputDir: outputDir,
				GroupBy:   groupFlag,
			})
			if err != nil {
				return err
			}

			rep := report.Summarize(results, kind, languages)
			reportPath, err := rep.WriteFile(outputDir)
			if err != nil {
				return err
			}
			logger.Debug("summary report written", "path", reportPath)

			runID := recordLedgerRun(cmd, cfg, logger, runstore.Run{
				ID:         uuid.New().String(),
				StartedAt:  started,
				FinishedAt: time.Now(),
				InputFile:  args[0],
				Kind:       string(kind),
				Languages:  languages,
				Mode:       string(mode),
				Total:      rep.Total,
				Succeeded:  rep.Succeeded,
				Failed:     rep.Failed,
			}, rep.Failures)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s scraping finished: %d attempted, %d succeeded, %d failed\n",
				kind.Title(), rep.Total, rep.Succeeded, rep.Failed)
			fmt.Fprintf(out, "Output: %s\n", artifact.Path)
			fmt.Fprintf(out, "Report: %s\n", reportPath)
			if runID != "" {
				fmt.Fprintf(out, "Run ID: %s\n", runID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().StringVarP(&languageFlag, "lang", "l", "", "Comma-separated language codes, request order preserved")
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "subtitle", "Media kind: subtitle or caption")
	cmd.Flags().IntVarP(&amountFlag, "amount", "n", 0, "Maximum records to process (0 uses the configured default)")
	cmd.Flags().BoolVar(&stripFlag, "strip", false, "Strip WEBVTT headers and timing lines from fetched tracks")
	cmd.Flags().IntVarP(&threadsFlag, "threads", "t", 0, "Concurrent fetch workers; 1 runs strictly sequentially")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text, ndjson, or csv")
	cmd.Flags().StringVarP(&groupFlag, "group", "g", "", `Text format only: "language" or a dot path into the record`)

	return cmd
}

// parseLanguages splits a comma-separated flag value, lower-casing each code
// once at the boundary. Order is preserved; empties are dropped.
func parseLanguages(value string) []string {
	var languages []string
	for _, part := range strings.Split(value, ",") {
		code := strings.ToLower(strings.TrimSpace(part))
		if code != "" {
			languages = append(languages, code)
		}
	}
	return languages
}

// warnUnknownLanguages flags codes BCP 47 cannot parse. Advisory only: the
// dataset's own codes decide matching, so an odd code still runs.
func warnUnknownLanguages(logger *slog.Logger, languages []string) {
	for _, code := range languages {
		if _, err := language.Parse(code); err != nil {
			logger.Warn("language code is not valid BCP 47; matching against dataset codes anyway", "code", code)
		}
	}
}

// recordLedgerRun persists run accounting when the ledger is enabled. Ledger
// problems are warnings: the summary report is the authoritative record.
func recordLedgerRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, run runstore.Run, failures []report.Failure) string {
	if !cfg.Ledger.Enabled {
		return ""
	}
	store, err := runstore.Open(cfg.Ledger.Path)
	if err != nil {
		logger.Warn("run ledger unavailable", "path", cfg.Ledger.Path, "error", err)
		return ""
	}
	defer store.Close()
	if err := store.RecordRun(cmd.Context(), run, failures); err != nil {
		logger.Warn("run ledger write failed", "error", err)
		return ""
	}
	return run.ID
}
