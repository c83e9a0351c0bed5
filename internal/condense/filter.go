package condense

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"condense/internal/subtitle"
)

// musicCuePattern matches caption text that is wholly a bracketed or
// parenthesized annotation, the common convention for sound-effect and
// music cues rather than spoken dialogue.
var musicCuePattern = regexp.MustCompile(`(?s)^\s*(\[[^\]]*\]|\([^)]*\))\s*$`)

// noteSymbols are musical note marks that flag sung or instrumental
// lines wherever they appear in the text.
const noteSymbols = "♪♫♬"

// Filter returns the captions whose text survives every exclusion rule:
// no case-insensitive whole-word keyword match, and (when the heuristic
// is enabled) no music-cue annotation. An empty keyword set with the
// heuristic disabled is a passthrough.
func Filter(captions []subtitle.Caption, keywords []string, musicHeuristic bool) []subtitle.Caption {
	if len(keywords) == 0 && !musicHeuristic {
		return append([]subtitle.Caption(nil), captions...)
	}

	fold := cases.Fold()
	folded := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			folded = append(folded, fold.String(keyword))
		}
	}

	kept := make([]subtitle.Caption, 0, len(captions))
	for _, caption := range captions {
		if musicHeuristic && isMusicCue(caption.Text) {
			continue
		}
		if matchesKeyword(fold.String(caption.Text), folded) {
			continue
		}
		kept = append(kept, caption)
	}
	return kept
}

func isMusicCue(text string) bool {
	if strings.ContainsAny(text, noteSymbols) {
		return true
	}
	return musicCuePattern.MatchString(text)
}

func matchesKeyword(foldedText string, foldedKeywords []string) bool {
	for _, keyword := range foldedKeywords {
		if containsWholeWord(foldedText, keyword) {
			return true
		}
	}
	return false
}

// containsWholeWord reports whether word occurs in text delimited by
// non-alphanumeric runes or text edges, so "music" matches "the music
// box" but not "musically".
func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	for offset := 0; offset <= len(text)-len(word); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		pos := offset + idx
		if boundaryBefore(text, pos) && boundaryAfter(text, pos+len(word)) {
			return true
		}
		offset = pos + 1
	}
	return false
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
