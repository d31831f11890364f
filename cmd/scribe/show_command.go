package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/jobs"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Display one job's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := cmd.Context()
			return ctx.withStore(cmdCtx, func(store *jobs.Store) error {
				job, err := store.GetByID(cmdCtx, args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:        %s\n", job.ID)
				fmt.Fprintf(out, "File key:  %s\n", job.FileKey)
				fmt.Fprintf(out, "Status:    %s\n", job.Status)
				fmt.Fprintf(out, "Engine:    %s\n", valueOrDash(job.Engine))
				fmt.Fprintf(out, "Output:    %s\n", valueOrDash(job.SrtKey))
				fmt.Fprintf(out, "Duration:  %s\n", formatDuration(job.DurationSec))
				fmt.Fprintf(out, "Created:   %s\n", job.CreatedAt.Local().Format(time.RFC3339))
				fmt.Fprintf(out, "Finished:  %s\n", formatFinished(job.FinishedAt))
				if job.ErrorMsg != "" {
					fmt.Fprintf(out, "Error:     %s\n", job.ErrorMsg)
				}
				return nil
			})
		},
	}
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func formatDuration(sec float64) string {
	if sec <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", sec)
}

func formatFinished(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.RFC3339)
}
