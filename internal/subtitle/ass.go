package subtitle

import (
	"fmt"
	"strings"
)

// parseASS parses Sub Station Alpha content (.ass and .ssa share the
// event syntax). Only the [Events] section matters: a Format line
// establishes the field order, and each Dialogue line carries a cue.
func parseASS(content string) ([]Caption, error) {
	var (
		captions  []Caption
		inEvents  bool
		fieldIdx  map[string]int
		sawFormat bool
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			inEvents = strings.EqualFold(line, "[Events]")
			continue
		case !inEvents:
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Format":
			fieldIdx = parseEventFormat(value)
			sawFormat = true
		case "Dialogue":
			if !sawFormat {
				return nil, fmt.Errorf("%w: Dialogue line before Format in [Events]", ErrParse)
			}
			caption, ok, err := parseDialogue(value, fieldIdx)
			if err != nil {
				return nil, err
			}
			if ok {
				captions = append(captions, caption)
			}
		}
	}

	if inEvents && !sawFormat {
		return nil, fmt.Errorf("%w: [Events] section has no Format line", ErrParse)
	}
	return captions, nil
}

func parseEventFormat(value string) map[string]int {
	idx := make(map[string]int)
	for i, field := range strings.Split(value, ",") {
		idx[strings.TrimSpace(field)] = i
	}
	return idx
}

func parseDialogue(value string, fieldIdx map[string]int) (Caption, bool, error) {
	textIdx, ok := fieldIdx["Text"]
	if !ok {
		return Caption{}, false, fmt.Errorf("%w: event Format lacks a Text field", ErrParse)
	}
	startIdx, okStart := fieldIdx["Start"]
	endIdx, okEnd := fieldIdx["End"]
	if !okStart || !okEnd {
		return Caption{}, false, fmt.Errorf("%w: event Format lacks Start/End fields", ErrParse)
	}

	// Text is the last field and may itself contain commas.
	fields := strings.SplitN(strings.TrimPrefix(value, " "), ",", textIdx+1)
	if len(fields) <= textIdx || len(fields) <= startIdx || len(fields) <= endIdx {
		return Caption{}, false, fmt.Errorf("%w: short Dialogue line %q", ErrParse, strings.TrimSpace(value))
	}

	start, err := parseASSTimestamp(fields[startIdx])
	if err != nil {
		return Caption{}, false, err
	}
	end, err := parseASSTimestamp(fields[endIdx])
	if err != nil {
		return Caption{}, false, err
	}

	text := stripMarkup(fields[textIdx])
	if text == "" || end <= start {
		return Caption{}, false, nil
	}
	return Caption{Start: start, End: end, Text: text}, true, nil
}
