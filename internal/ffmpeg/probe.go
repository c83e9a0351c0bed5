package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeResult struct {
	Format probeFormat `json:"format"`
}

// ProbeDuration executes ffprobe against path and reports the container
// duration. It exists for run statistics only; callers must treat a probe
// failure as a missing number, never a fatal condition.
func ProbeDuration(ctx context.Context, binary string, path string) (time.Duration, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, errors.New("ffprobe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbeDuration(output)
}

func parseProbeDuration(output []byte) (time.Duration, error) {
	var result probeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(result.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", result.Format.Duration, err)
	}
	// Millisecond precision is all the pipeline works at.
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond, nil
}
