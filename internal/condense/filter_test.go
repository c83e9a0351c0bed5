package condense

import (
	"testing"
	"time"

	"condense/internal/subtitle"
)

func caption(start, end time.Duration, text string) subtitle.Caption {
	return subtitle.Caption{Start: start, End: end, Text: text}
}

func TestFilterPassthrough(t *testing.T) {
	captions := []subtitle.Caption{
		caption(0, time.Second, "[music]"),
		caption(time.Second, 2*time.Second, "Hello"),
	}
	kept := Filter(captions, nil, false)
	if len(kept) != 2 {
		t.Fatalf("expected passthrough with no rules, got %d captions", len(kept))
	}
}

func TestFilterKeywordWholeWord(t *testing.T) {
	captions := []subtitle.Caption{
		caption(0, time.Second, "the music box"),
		caption(time.Second, 2*time.Second, "musically inclined"),
		caption(2*time.Second, 3*time.Second, "loud SFX here"),
	}
	kept := Filter(captions, []string{"music", "SFX"}, false)
	if len(kept) != 1 {
		t.Fatalf("expected 1 caption kept, got %d", len(kept))
	}
	if kept[0].Text != "musically inclined" {
		t.Fatalf("whole-word match must not drop %q", kept[0].Text)
	}
}

func TestFilterKeywordCaseInsensitive(t *testing.T) {
	captions := []subtitle.Caption{
		caption(0, time.Second, "LOUD Music playing"),
		caption(time.Second, 2*time.Second, "Straße ahead"),
	}
	if kept := Filter(captions, []string{"music"}, false); len(kept) != 1 {
		t.Fatalf("expected case-insensitive keyword drop, kept %d", len(kept))
	}
	// Unicode case folding: ß folds to ss.
	if kept := Filter(captions, []string{"STRASSE"}, false); len(kept) != 1 {
		t.Fatalf("expected folded keyword drop, kept %d", len(kept))
	}
}

func TestFilterMusicHeuristic(t *testing.T) {
	captions := []subtitle.Caption{
		caption(0, time.Second, "[dramatic music]"),
		caption(time.Second, 2*time.Second, "(door creaks)"),
		caption(2*time.Second, 3*time.Second, "♬ la la la ♬"),
		caption(3*time.Second, 4*time.Second, "We [mostly] talk"),
		caption(4*time.Second, 5*time.Second, "Plain dialogue"),
	}
	kept := Filter(captions, nil, true)
	if len(kept) != 2 {
		t.Fatalf("expected 2 captions kept, got %d", len(kept))
	}
	if kept[0].Text != "We [mostly] talk" || kept[1].Text != "Plain dialogue" {
		t.Fatalf("unexpected survivors: %+v", kept)
	}
}

func TestFilterRulesCompose(t *testing.T) {
	captions := []subtitle.Caption{
		caption(0, time.Second, "[thunder]"),
		caption(time.Second, 2*time.Second, "annoying jingle"),
		caption(2*time.Second, 3*time.Second, "real dialogue"),
	}
	kept := Filter(captions, []string{"jingle"}, true)
	if len(kept) != 1 || kept[0].Text != "real dialogue" {
		t.Fatalf("expected keyword OR heuristic to drop, got %+v", kept)
	}
}

func TestContainsWholeWord(t *testing.T) {
	cases := []struct {
		text string
		word string
		want bool
	}{
		{"the music box", "music", true},
		{"musically", "music", false},
		{"music", "music", true},
		{"music!", "music", true},
		{"pop-music", "music", true},
		{"", "music", false},
		{"music box", "", false},
	}
	for _, tc := range cases {
		if got := containsWholeWord(tc.text, tc.word); got != tc.want {
			t.Fatalf("containsWholeWord(%q, %q) = %v, want %v", tc.text, tc.word, got, tc.want)
		}
	}
}
