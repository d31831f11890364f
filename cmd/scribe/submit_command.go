package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scribe/internal/jobs"
	"scribe/internal/queue"
)

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var engine string
	var durationSec float64

	cmd := &cobra.Command{
		Use:   "submit <file-key>",
		Short: "Queue a transcription job for an uploaded media object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileKey := args[0]
			job := &jobs.Job{
				ID:          uuid.NewString(),
				FileKey:     fileKey,
				Engine:      engine,
				DurationSec: durationSec,
			}

			cmdCtx := cmd.Context()
			if err := ctx.withStore(cmdCtx, func(store *jobs.Store) error {
				return store.Create(cmdCtx, job)
			}); err != nil {
				return fmt.Errorf("create job: %w", err)
			}

			if err := ctx.withQueue(func(q *queue.Client) error {
				return q.Push(cmdCtx, queue.Message{
					JobID:   job.ID,
					FileKey: job.FileKey,
					Engine:  job.Engine,
				})
			}); err != nil {
				return fmt.Errorf("enqueue job: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Submitted job %s for %s\n", job.ID, job.FileKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "google", "Recognition engine to request")
	cmd.Flags().Float64Var(&durationSec, "duration", 0, "Pre-measured media duration in seconds, if known")
	return cmd
}
