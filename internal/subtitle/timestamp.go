package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseSRTTimestamp parses an SRT cue timestamp (HH:MM:SS,mmm). A period
// in place of the comma is tolerated (common in the wild).
func parseSRTTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty timestamp", ErrParse)
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	hours, errH := strconv.Atoi(strings.TrimSpace(hms[0]))
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// parseASSTimestamp parses a Sub Station Alpha timestamp (H:MM:SS.cc,
// centisecond precision).
func parseASSTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	seconds, errS := strconv.Atoi(secParts[0])
	centis, errC := strconv.Atoi(secParts[1])
	if errH != nil || errM != nil || errS != nil || errC != nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrParse, value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond, nil
}
