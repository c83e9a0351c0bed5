package condense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"condense/internal/ffmpeg"
	"condense/internal/subtitle"
)

// Stage names the pipeline states. A run walks them strictly in order;
// no stage is ever re-entered, and any error is terminal.
type Stage int

const (
	StageLoading Stage = iota
	StageFiltering
	StageReducing
	StageGraphBuilding
	StageTranscoding
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageFiltering:
		return "filtering"
	case StageReducing:
		return "reducing"
	case StageGraphBuilding:
		return "graph-building"
	case StageTranscoding:
		return "transcoding"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Engine is the narrow boundary to the external transcoding engine, so
// the pipeline can be exercised with a fake in tests.
type Engine interface {
	Transcode(ctx context.Context, graph ffmpeg.Graph, inputPath, outputPath string) error
}

// Request carries the effective inputs for one condensing run.
type Request struct {
	Video       string
	Subtitles   string
	Output      string
	Keywords    []string
	MusicFilter bool
	MergeGap    time.Duration
	// DryRun stops after graph construction without touching the engine.
	DryRun bool
}

// Result reports what a completed (or dry) run produced.
type Result struct {
	RunID            string
	CaptionsLoaded   int
	CaptionsKept     int
	Intervals        []Interval
	DialogueDuration time.Duration
	Graph            ffmpeg.Graph
	Transcoded       bool
}

// Pipeline wires the loader, filter, reducer, and graph builder in front
// of a transcoding engine.
type Pipeline struct {
	engine Engine
	logger *slog.Logger
}

// New returns a Pipeline using the given engine. A nil logger disables
// pipeline logging.
func New(engine Engine, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{engine: engine, logger: logger}
}

// Run executes one condensing pass. Stages are fully sequential and every
// error is fatal at its point of detection: the run either fully succeeds
// or writes no output.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	result := Result{RunID: uuid.NewString()}
	log := p.logger.With(slog.String("run_id", result.RunID))

	log.Info("stage started", slog.String("stage", StageLoading.String()), slog.String("subtitles", req.Subtitles))
	captions, err := subtitle.Load(req.Subtitles)
	if err != nil {
		return result, stageError(StageLoading, err)
	}
	result.CaptionsLoaded = len(captions)

	log.Info("stage started", slog.String("stage", StageFiltering.String()),
		slog.Int("captions", len(captions)), slog.Int("keywords", len(req.Keywords)),
		slog.Bool("music_heuristic", req.MusicFilter))
	kept := Filter(captions, req.Keywords, req.MusicFilter)
	result.CaptionsKept = len(kept)
	if dropped := len(captions) - len(kept); dropped > 0 {
		log.Info("captions excluded", slog.Int("dropped", dropped))
	}

	log.Info("stage started", slog.String("stage", StageReducing.String()), slog.Duration("merge_gap", req.MergeGap))
	intervals, err := Reduce(kept, req.MergeGap)
	if err != nil {
		return result, stageError(StageReducing, err)
	}
	result.Intervals = intervals
	result.DialogueDuration = TotalDuration(intervals)

	log.Info("stage started", slog.String("stage", StageGraphBuilding.String()), slog.Int("intervals", len(intervals)))
	graph, err := ffmpeg.BuildGraph(spansOf(intervals))
	if err != nil {
		return result, stageError(StageGraphBuilding, err)
	}
	result.Graph = graph

	if req.DryRun {
		log.Info("dry run, engine not invoked", slog.Int("segments", graph.SegmentCount()))
		return result, nil
	}

	log.Info("stage started", slog.String("stage", StageTranscoding.String()), slog.String("output", req.Output))
	if err := p.engine.Transcode(ctx, graph, req.Video, req.Output); err != nil {
		return result, stageError(StageTranscoding, err)
	}
	result.Transcoded = true

	log.Info("stage finished", slog.String("stage", StageDone.String()),
		slog.Duration("dialogue", result.DialogueDuration))
	return result, nil
}

func spansOf(intervals []Interval) []ffmpeg.Span {
	spans := make([]ffmpeg.Span, 0, len(intervals))
	for _, iv := range intervals {
		spans = append(spans, ffmpeg.Span{Start: iv.Start, End: iv.End})
	}
	return spans
}

func stageError(stage Stage, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}
