package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrTranscode marks a failed engine invocation. The wrapped message
// carries ffmpeg's diagnostic output verbatim.
var ErrTranscode = errors.New("transcode failed")

// Transcoder invokes ffmpeg once per Transcode call. The output
// container and codec are implied by the output path's extension; no
// retry and no timeout are imposed.
type Transcoder struct {
	Binary string
	Logger *slog.Logger
}

// Transcode applies the graph to inputPath and writes the condensed audio
// to outputPath. It blocks until the subprocess exits; a non-zero exit
// status is surfaced as ErrTranscode with the engine's stderr attached.
func (t *Transcoder) Transcode(ctx context.Context, graph Graph, inputPath, outputPath string) error {
	binary := strings.TrimSpace(t.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}

	args := []string{
		"-hide_banner", "-loglevel", "error", "-nostats", "-y",
		"-i", inputPath,
		"-filter_complex", graph.Filter(),
		"-map", graph.OutputLabel(),
		outputPath,
	}

	if t.Logger != nil {
		t.Logger.Info("invoking engine",
			slog.String("binary", binary),
			slog.Int("segments", graph.SegmentCount()),
			slog.String("output", outputPath))
	}

	started := time.Now()
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// A failed run must leave no partial output behind.
		_ = os.Remove(outputPath)
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			return fmt.Errorf("%w: %v", ErrTranscode, err)
		}
		return fmt.Errorf("%w: %v: %s", ErrTranscode, err, diagnostic)
	}

	if t.Logger != nil {
		t.Logger.Info("engine finished", slog.Duration("elapsed", time.Since(started)))
	}
	return nil
}
