package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/queue"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Queue utilities",
	}
	queueCmd.AddCommand(newQueueStatusCommand(ctx))
	return queueCmd
}

func newQueueStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue connectivity and depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := cmd.Context()
			return ctx.withQueue(func(q *queue.Client) error {
				if err := q.Ping(cmdCtx); err != nil {
					return err
				}
				depth, err := q.Len(cmdCtx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queue reachable, %d pending message(s)\n", depth)
				return nil
			})
		},
	}
}
