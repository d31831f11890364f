// Package subtitles turns a globally-timed word list into SRT text.
//
// The pipeline is filter, gibberish check, cue segmentation, render. When
// the gibberish check trips, segmentation is bypassed and the flat
// transcript is rendered as fixed-duration blocks instead.
package subtitles
