// Package condense holds the core dialogue-extraction pipeline.
//
// The pipeline is a single linear pass over immutable values: load
// captions, drop non-dialogue text, reduce the surviving time ranges to
// merged disjoint intervals, build the trim/concat filter graph, and
// hand it to the transcoding engine exactly once. Each stage consumes
// its input and produces a fresh output; any failure moves the run
// straight to a terminal failed state, and no partial output is written.
//
// Key pieces:
//   - Filter: keyword and music-cue caption exclusion
//   - Reduce: the interval sweep/merge algorithm
//   - Pipeline: stage orchestration against an Engine implementation
package condense
