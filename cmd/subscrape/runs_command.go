package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/j-nivekk/miscdataworks/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent scrape runs from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					run.Kind,
					strings.Join(run.Languages, ","),
					run.Mode,
					strconv.Itoa(run.Total),
					strconv.Itoa(run.Succeeded),
					strconv.Itoa(run.Failed),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Started", "Kind", "Languages", "Format", "Attempts", "OK", "Failed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum runs to list")
	cmd.AddCommand(newRunsShowCommand(ctx))

	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run's details and failure ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			run, failures, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:       %s\n", run.ID)
			fmt.Fprintf(out, "Started:   %s\n", run.StartedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Finished:  %s\n", run.FinishedAt.Local().Format(time.DateTime))
			fmt.Fprintf(out, "Input:     %s\n", run.InputFile)
			fmt.Fprintf(out, "Kind:      %s\n", run.Kind)
			fmt.Fprintf(out, "Languages: %s\n", strings.Join(run.Languages, ", "))
			fmt.Fprintf(out, "Format:    %s\n", run.Mode)
			fmt.Fprintf(out, "Attempts:  %d (%d succeeded, %d failed)\n", run.Total, run.Succeeded, run.Failed)
			if len(failures) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(failures))
			for _, failure := range failures {
				rows = append(rows, []string{failure.Identity, failure.Language, failure.Reason})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Video ID", "Language", "Reason"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func openLedger(ctx *commandContext) (*runstore.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Ledger.Enabled {
		return nil, fmt.Errorf("run ledger is disabled: set ledger.enabled = true in the config")
	}
	return runstore.Open(cfg.Ledger.Path)
}
