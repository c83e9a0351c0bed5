package condense

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"condense/internal/subtitle"
)

// ErrInvalidTiming marks captions with negative or inverted timestamps.
var ErrInvalidTiming = errors.New("invalid caption timing")

// DefaultMergeGap is the gap below which two caption ranges are treated
// as continuous dialogue. Merging avoids hundreds of sub-second clips
// that would degrade transcoding performance and audio continuity.
const DefaultMergeGap = 1250 * time.Millisecond

// Interval is a merged, disjoint time range selected for extraction.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End - iv.Start
}

// Reduce collapses caption time ranges into a minimal ordered sequence
// of disjoint intervals. Captions whose start falls within the current
// interval extended by mergeGap extend it; anything later opens a new
// one. Loading already yields sorted captions, but the input is re-sorted
// rather than trusted.
func Reduce(captions []subtitle.Caption, mergeGap time.Duration) ([]Interval, error) {
	if mergeGap < 0 {
		mergeGap = 0
	}
	if len(captions) == 0 {
		return nil, nil
	}

	sorted := append([]subtitle.Caption(nil), captions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for _, caption := range sorted {
		if caption.Start < 0 {
			return nil, fmt.Errorf("%w: negative start %v", ErrInvalidTiming, caption.Start)
		}
		if caption.End <= caption.Start {
			return nil, fmt.Errorf("%w: cue at %v ends at or before its start", ErrInvalidTiming, caption.Start)
		}
	}

	intervals := make([]Interval, 0, len(sorted))
	current := Interval{Start: sorted[0].Start, End: sorted[0].End}
	for _, caption := range sorted[1:] {
		if caption.Start <= current.End+mergeGap {
			if caption.End > current.End {
				current.End = caption.End
			}
			continue
		}
		intervals = append(intervals, current)
		current = Interval{Start: caption.Start, End: caption.End}
	}
	return append(intervals, current), nil
}

// TotalDuration sums the lengths of all intervals.
func TotalDuration(intervals []Interval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration()
	}
	return total
}
