// Package recognition drives the external speech-to-text backend per audio
// chunk and stitches per-chunk word timestamps into one job-global timeline.
package recognition
