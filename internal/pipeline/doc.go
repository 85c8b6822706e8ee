// Package pipeline drives the stage-gated annotator over an ascending
// evidence stream: count at the head, call and evict once a position
// falls a configured window behind it.
//
// Strictly single-threaded and single-pass; the annotator and its depth
// buffer are never shared across goroutines.
package pipeline
