package subtitle

import (
	"regexp"
	"strings"
)

var (
	assOverrideTags = regexp.MustCompile(`\{[^}]*\}`)
	htmlishTags     = regexp.MustCompile(`(?i)</?(?:i|b|u|s|font|ruby|rt|c)(?:\s[^>]*)?>`)
	runsOfSpace     = regexp.MustCompile(`[ \t]+`)
)

// stripMarkup reduces cue text to plain dialogue: ASS override tags,
// SRT HTML-style styling tags, and line-break escapes are removed so
// text filtering operates on content, not decoration.
func stripMarkup(text string) string {
	text = assOverrideTags.ReplaceAllString(text, "")
	text = htmlishTags.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\N`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\h`, " ")
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(runsOfSpace.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
