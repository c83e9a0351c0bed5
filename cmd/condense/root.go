package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"condense/internal/condense"
	"condense/internal/config"
	"condense/internal/deps"
	"condense/internal/ffmpeg"
	"condense/internal/logging"
	"condense/internal/subtitle"
)

type rootOptions struct {
	input         string
	subtitles     string
	filters       string
	noMusicFilter bool
	mergeGapMS    int
	dryRun        bool
	summary       bool
	configPath    string
	logLevel      string
	logFormat     string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "condense -i video.mkv [flags] output",
		Short: "Condense video to dialogue-only audio for passive immersion",
		Long: `Condense extracts the audio spans covered by subtitle dialogue and
concatenates them into a single condensed track.

The subtitles default to a sibling .srt/.ass/.ssa file with the same
name as the input video. Bracketed sound and music annotations are
filtered out unless --no-music-filter is given.`,
		Example: `  condense -i video.mkv out.mp3
  condense -i video.mp4 -s video_sub.srt out.aac
  condense -i video.mkv -f "music intro" --dry-run out.mp3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCondense(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to a video in a format ffmpeg supports (required)")
	cmd.Flags().StringVarP(&opts.subtitles, "subtitles", "s", "", "Path to the subtitle file (default: sibling .srt/.ass/.ssa)")
	cmd.Flags().StringVarP(&opts.filters, "filters", "f", "", "Space-separated words whose captions are excluded")
	cmd.Flags().BoolVar(&opts.noMusicFilter, "no-music-filter", false, "Keep bracketed sound/music annotation captions")
	cmd.Flags().IntVar(&opts.mergeGapMS, "merge-gap", 0, "Merge captions separated by less than this many milliseconds")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the intervals and filter graph without invoking ffmpeg")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Always print the run summary table")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Override the configured log format (console or json)")
	_ = cmd.MarkFlagRequired("input")

	cmd.AddCommand(newConfigCommand())

	return cmd
}

func runCondense(cmd *cobra.Command, opts rootOptions, outputArg string) error {
	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logLevel := cfg.Logging.Level
	if strings.TrimSpace(opts.logLevel) != "" {
		logLevel = opts.logLevel
	}
	logFormat := cfg.Logging.Format
	if strings.TrimSpace(opts.logFormat) != "" {
		logFormat = opts.logFormat
	}
	logger, err := logging.New(logging.Options{Level: logLevel, Format: logFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	videoPath, err := filepath.Abs(opts.input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	if info, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("input video %s: %w", videoPath, err)
	} else if info.IsDir() {
		return fmt.Errorf("input video %s is a directory", videoPath)
	}

	subtitlesPath, err := resolveSubtitles(opts.subtitles, videoPath)
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputPath(outputArg, videoPath)
	if err != nil {
		return err
	}

	statuses := deps.Check(deps.Requirements(cfg.FFmpeg.Binary, cfg.FFmpeg.ProbeBinary))
	if status, missing := deps.FirstMissing(statuses); missing && !opts.dryRun {
		return fmt.Errorf("%s unavailable: %s", status.Name, status.Detail)
	}

	mergeGap := cfg.MergeGap()
	if cmd.Flags().Changed("merge-gap") {
		if opts.mergeGapMS < 0 {
			return errors.New("--merge-gap must not be negative")
		}
		mergeGap = time.Duration(opts.mergeGapMS) * time.Millisecond
	}

	keywords := append([]string(nil), cfg.Condense.Keywords...)
	keywords = append(keywords, strings.Fields(opts.filters)...)

	request := condense.Request{
		Video:       videoPath,
		Subtitles:   subtitlesPath,
		Output:      outputPath,
		Keywords:    keywords,
		MusicFilter: cfg.Condense.MusicFilter && !opts.noMusicFilter,
		MergeGap:    mergeGap,
		DryRun:      opts.dryRun,
	}

	engine := &ffmpeg.Transcoder{Binary: cfg.FFmpeg.Binary, Logger: logger}
	pipeline := condense.New(engine, logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !opts.dryRun {
		unlock, err := lockOutput(outputPath)
		if err != nil {
			return err
		}
		defer unlock()
	}

	result, err := pipeline.Run(ctx, request)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		fmt.Fprintln(out, renderIntervalTable(result.Intervals))
		fmt.Fprintln(out, "filter graph:")
		fmt.Fprintln(out, result.Graph.Filter())
		return nil
	}

	var sourceDuration time.Duration
	if probed, err := ffmpeg.ProbeDuration(ctx, cfg.FFmpeg.ProbeBinary, videoPath); err == nil {
		sourceDuration = probed
	} else {
		logger.Debug("source duration unavailable", "error", err)
	}

	if opts.summary || stdoutIsTerminal() {
		fmt.Fprintln(out, renderSummaryTable(result, sourceDuration, outputPath))
	} else {
		fmt.Fprintf(out, "wrote %s (%s of dialogue from %d intervals)\n",
			outputPath, formatDuration(result.DialogueDuration), len(result.Intervals))
	}
	return nil
}

// resolveSubtitles returns the explicit path when given, otherwise the
// first sibling subtitle file of the video.
func resolveSubtitles(explicit, videoPath string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return filepath.Abs(explicit)
	}
	if found, ok := subtitle.Discover(videoPath); ok {
		return found, nil
	}
	return "", fmt.Errorf("%w: no sibling subtitle file for %s (tried %s)",
		subtitle.ErrNotFound, videoPath, strings.Join(subtitle.DiscoverExtensions(), ", "))
}

// resolveOutputPath handles an output argument that names an existing
// directory by deriving a file name from the video stem.
func resolveOutputPath(outputArg, videoPath string) (string, error) {
	outputPath, err := filepath.Abs(outputArg)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		outputPath = filepath.Join(outputPath, stem+".aac")
	}
	return outputPath, nil
}

// lockOutput guards the output path against a concurrent run writing the
// same file. The lock file sits next to the output and is removed on
// release.
func lockOutput(outputPath string) (func(), error) {
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another condense run is already writing %s", outputPath)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}, nil
}
