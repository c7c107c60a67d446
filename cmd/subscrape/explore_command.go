package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/j-nivekk/miscdataworks/internal/explore"
	"github.com/j-nivekk/miscdataworks/internal/record"
)

func newExploreCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var topFlag int

	cmd := &cobra.Command{
		Use:   "explore <input.ndjson>",
		Short: "Show which languages a dataset offers before scraping it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.ensureLogger()

			kind, err := record.ParseKind(kindFlag)
			if err != nil {
				return err
			}

			records, err := record.ReadFile(args[0], logger)
			if err != nil {
				return err
			}

			stats := explore.Scan(records, kind)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Records: %d\n", stats.TotalRecords)
			fmt.Fprintf(out, "Records with %s tracks: %d\n", kind, stats.RecordsWithMedia)
			fmt.Fprintf(out, "Distinct languages: %d\n", stats.UniqueLanguages())

			top := stats.Top(topFlag)
			if len(top) == 0 {
				fmt.Fprintln(out, "No language data found")
				return nil
			}

			total := 0
			for _, count := range stats.Counts {
				total += count
			}
			rows := make([][]string, 0, len(top))
			for _, entry := range top {
				percent := float64(entry.Count) / float64(total) * 100
				rows = append(rows, []string{
					entry.Language,
					strconv.Itoa(entry.Count),
					fmt.Sprintf("%.1f%%", percent),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Language", "Tracks", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			if remaining := stats.UniqueLanguages() - len(top); remaining > 0 {
				fmt.Fprintf(out, "…and %d more (raise --top to see them)\n", remaining)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "subtitle", "Media kind: subtitle or caption")
	cmd.Flags().IntVar(&topFlag, "top", 5, "How many languages to list (0 lists all)")

	return cmd
}
