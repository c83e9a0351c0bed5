package ffmpeg

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBuildGraphEmpty(t *testing.T) {
	if _, err := BuildGraph(nil); !errors.Is(err, ErrEmptyIntervals) {
		t.Fatalf("expected ErrEmptyIntervals, got %v", err)
	}
}

func TestGraphFilterSingleSpan(t *testing.T) {
	graph, err := BuildGraph([]Span{{Start: 0, End: 2 * time.Second}})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	want := "[0:a:0]atrim=start=0.000:end=2.000,asetpts=PTS-STARTPTS[a0];[a0]concat=n=1:v=0:a=1[aout]"
	if got := graph.Filter(); got != want {
		t.Fatalf("unexpected filter:\n got %s\nwant %s", got, want)
	}
}

func TestGraphFilterMultipleSpans(t *testing.T) {
	spans := []Span{
		{Start: 0, End: time.Second},
		{Start: 5 * time.Second, End: 6500 * time.Millisecond},
	}
	graph, err := BuildGraph(spans)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	filter := graph.Filter()
	if !strings.Contains(filter, "atrim=start=0.000:end=1.000") {
		t.Fatalf("missing first trim: %s", filter)
	}
	if !strings.Contains(filter, "atrim=start=5.000:end=6.500") {
		t.Fatalf("missing second trim: %s", filter)
	}
	if !strings.HasSuffix(filter, "[a0][a1]concat=n=2:v=0:a=1[aout]") {
		t.Fatalf("concat must reference trims in order: %s", filter)
	}
	if graph.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments, got %d", graph.SegmentCount())
	}
}

func TestGraphFilterDeterministic(t *testing.T) {
	spans := []Span{
		{Start: 1300 * time.Millisecond, End: 2 * time.Second},
		{Start: 9 * time.Second, End: 12 * time.Second},
	}
	first, err := BuildGraph(spans)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	second, err := BuildGraph(spans)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if first.Filter() != second.Filter() {
		t.Fatal("expected byte-identical filters for identical spans")
	}
}

func TestBuildGraphCopiesInput(t *testing.T) {
	spans := []Span{{Start: 0, End: time.Second}}
	graph, err := BuildGraph(spans)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	before := graph.Filter()
	spans[0].End = 9 * time.Second
	if graph.Filter() != before {
		t.Fatal("graph must not alias the caller's slice")
	}
}

func TestParseProbeDuration(t *testing.T) {
	payload := []byte(`{"format":{"filename":"in.mkv","duration":"1432.768000"}}`)
	duration, err := parseProbeDuration(payload)
	if err != nil {
		t.Fatalf("parseProbeDuration: %v", err)
	}
	if duration != 1432768*time.Millisecond {
		t.Fatalf("unexpected duration %v", duration)
	}
}

func TestParseProbeDurationMissing(t *testing.T) {
	if _, err := parseProbeDuration([]byte(`{"format":{}}`)); err == nil {
		t.Fatal("expected error for missing duration")
	}
	if _, err := parseProbeDuration([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}
