package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"condense/internal/condense"
	"condense/internal/ffmpeg"
	"condense/internal/subtitle"
)

// Exit codes, one per error kind.
const (
	exitFailure           = 1
	exitNotFound          = 2
	exitUnsupportedFormat = 3
	exitParse             = 4
	exitInvalidTiming     = 5
	exitEmptyIntervals    = 6
	exitTranscode         = 7
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "condense: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, subtitle.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case errors.Is(err, subtitle.ErrUnsupportedFormat):
		return exitUnsupportedFormat
	case errors.Is(err, subtitle.ErrParse):
		return exitParse
	case errors.Is(err, condense.ErrInvalidTiming):
		return exitInvalidTiming
	case errors.Is(err, ffmpeg.ErrEmptyIntervals):
		return exitEmptyIntervals
	case errors.Is(err, ffmpeg.ErrTranscode):
		return exitTranscode
	default:
		return exitFailure
	}
}
