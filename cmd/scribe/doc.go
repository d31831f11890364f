// Package main hosts the scribe CLI entrypoint and command graph.
//
// The Cobra-based command tree submits transcription jobs, inspects job
// records, reports queue health, and scaffolds configuration. It centralizes
// configuration resolution and connection setup so subcommands can focus on
// user experience instead of wiring.
package main
