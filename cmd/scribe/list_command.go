package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/jobs"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := cmd.Context()
			return ctx.withStore(cmdCtx, func(store *jobs.Store) error {
				records, err := store.List(cmdCtx, limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No jobs found.")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, job := range records {
					rows = append(rows, []string{
						job.ID,
						string(job.Status),
						job.FileKey,
						formatDuration(job.DurationSec),
						job.CreatedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Status", "File", "Duration", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of jobs to show")
	return cmd
}
