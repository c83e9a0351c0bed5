package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSRT parses SubRip content. Each cue is a block separated by blank
// lines: an optional numeric index line, a "start --> end" timing line,
// then one or more text lines.
func parseSRT(content string) ([]Caption, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}

	var captions []Caption
	for _, block := range splitBlocks(trimmed) {
		lines := strings.Split(block, "\n")
		pos := 0
		if pos < len(lines) && isNumeric(lines[pos]) {
			pos++
		}
		if pos >= len(lines) {
			return nil, fmt.Errorf("%w: cue %q has no timing line", ErrParse, firstLine(block))
		}
		timing := lines[pos]
		if !strings.Contains(timing, "-->") {
			return nil, fmt.Errorf("%w: expected timing line, got %q", ErrParse, timing)
		}
		pos++

		parts := strings.SplitN(timing, "-->", 2)
		start, err := parseSRTTimestamp(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parseSRTTimestamp(trimTimingSettings(parts[1]))
		if err != nil {
			return nil, err
		}

		text := stripMarkup(strings.Join(lines[pos:], "\n"))
		if text == "" || end <= start {
			continue
		}
		captions = append(captions, Caption{Start: start, End: end, Text: text})
	}
	return captions, nil
}

func splitBlocks(content string) []string {
	raw := strings.Split(content, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.TrimSpace(block))
		}
	}
	return blocks
}

// trimTimingSettings drops SRT cue settings (position hints some tools
// append after the end timestamp).
func trimTimingSettings(value string) string {
	fields := strings.Fields(strings.TrimSpace(value))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func firstLine(block string) string {
	if idx := strings.IndexByte(block, '\n'); idx >= 0 {
		return block[:idx]
	}
	return block
}

func isNumeric(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, err := strconv.Atoi(value)
	return err == nil
}
