// Package worker orchestrates one transcription job end-to-end: dequeue,
// download, probe, normalize, split, recognize, stitch, segment, render,
// upload, and the matching job record transition. One invocation handles at
// most one job; scale-out is achieved by running more invocations.
package worker
