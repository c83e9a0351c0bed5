package main

import (
	"strings"
	"testing"
	"time"

	"condense/internal/condense"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00.000"},
		{1500 * time.Millisecond, "0:00:01.500"},
		{time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond, "1:02:03.045"},
		{-time.Second, "0:00:00.000"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderIntervalTable(t *testing.T) {
	intervals := []condense.Interval{
		{Start: 0, End: 2 * time.Second},
		{Start: 10 * time.Second, End: 11 * time.Second},
	}
	rendered := renderIntervalTable(intervals)
	for _, want := range []string{"0:00:00.000", "0:00:02.000", "0:00:10.000", "0:00:11.000", "Length"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in table:\n%s", want, rendered)
		}
	}
}

func TestRenderSummaryTableWithSourceDuration(t *testing.T) {
	result := condense.Result{
		CaptionsLoaded:   10,
		CaptionsKept:     8,
		Intervals:        []condense.Interval{{Start: 0, End: 30 * time.Second}},
		DialogueDuration: 30 * time.Second,
	}
	rendered := renderSummaryTable(result, 2*time.Minute, "/tmp/out.mp3")
	if !strings.Contains(rendered, "25.0%") {
		t.Fatalf("expected condensation ratio:\n%s", rendered)
	}
	if !strings.Contains(rendered, "/tmp/out.mp3") {
		t.Fatalf("expected output path:\n%s", rendered)
	}
}

func TestRenderSummaryTableWithoutSourceDuration(t *testing.T) {
	rendered := renderSummaryTable(condense.Result{}, 0, "out.mp3")
	if strings.Contains(rendered, "Condensed to") {
		t.Fatalf("ratio must be omitted when the source duration is unknown:\n%s", rendered)
	}
}
