package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyIntervals marks a graph build with nothing to extract; a
// concatenation of zero segments is undefined.
var ErrEmptyIntervals = errors.New("no intervals to extract")

// Span is one time range to trim from the source audio stream,
// selecting [Start, End).
type Span struct {
	Start time.Duration
	End   time.Duration
}

// Duration returns the span length.
func (s Span) Duration() time.Duration {
	return s.End - s.Start
}

// Graph is an immutable trim-and-concatenate filter description: one
// atrim per span over the first audio stream, then a single concat
// referencing every trim label in span order.
type Graph struct {
	spans []Span
}

// BuildGraph constructs a Graph from ordered disjoint spans. Construction
// is a pure function of its input: identical spans always produce an
// identical graph.
func BuildGraph(spans []Span) (Graph, error) {
	if len(spans) == 0 {
		return Graph{}, ErrEmptyIntervals
	}
	return Graph{spans: append([]Span(nil), spans...)}, nil
}

// SegmentCount reports the number of trim operations in the graph.
func (g Graph) SegmentCount() int {
	return len(g.spans)
}

// OutputLabel returns the stream label the final concat writes to,
// suitable for ffmpeg's -map flag.
func (g Graph) OutputLabel() string {
	return "[aout]"
}

// Filter renders the graph as an ffmpeg filter_complex expression.
// Timestamps are rendered with millisecond precision and labels are
// positional, so the output is byte-identical across calls.
func (g Graph) Filter() string {
	parts := make([]string, 0, len(g.spans)+1)
	labels := make([]string, 0, len(g.spans))
	for i, span := range g.spans {
		label := fmt.Sprintf("a%d", i)
		labels = append(labels, "["+label+"]")
		parts = append(parts, fmt.Sprintf("[0:a:0]atrim=start=%.3f:end=%.3f,asetpts=PTS-STARTPTS[%s]",
			span.Start.Seconds(), span.End.Seconds(), label))
	}
	parts = append(parts, fmt.Sprintf("%sconcat=n=%d:v=0:a=1%s",
		strings.Join(labels, ""), len(g.spans), g.OutputLabel()))
	return strings.Join(parts, ";")
}
