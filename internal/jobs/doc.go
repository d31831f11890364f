// Package jobs persists transcription job records and their lifecycle
// transitions in Postgres.
//
// A job moves queued -> processing -> done | failed. Terminal states are
// final: failed jobs are never retried by the worker, they must be
// resubmitted. Each transition is a single atomic UPDATE writing only the
// fields relevant to that transition.
package jobs
