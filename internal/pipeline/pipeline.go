package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"reelcraft/internal/logging"
	"reelcraft/internal/services"
)

// Stage is one unit of work in the content pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

type stageFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (s stageFunc) Name() string                  { return s.name }
func (s stageFunc) Run(ctx context.Context) error { return s.fn(ctx) }

// NewStage wraps a function as a named pipeline stage.
func NewStage(name string, fn func(ctx context.Context) error) Stage {
	return stageFunc{name: name, fn: fn}
}

// Plan resolves the artifact paths shared by the pipeline stages.
type Plan struct {
	ProjectName  string
	OutputDir    string
	AudioPath    string
	SubtitlePath string
	VideoPath    string
}

// NewPlan derives artifact paths from the output directory and project name.
func NewPlan(outputDir, projectName string) Plan {
	return Plan{
		ProjectName:  projectName,
		OutputDir:    outputDir,
		AudioPath:    filepath.Join(outputDir, projectName+"_audio.wav"),
		SubtitlePath: filepath.Join(outputDir, projectName+"_subtitles.srt"),
		VideoPath:    filepath.Join(outputDir, projectName+"_final.mp4"),
	}
}

// Pipeline runs stages strictly in order, stopping at the first failure.
// Artifacts produced by completed stages are left on disk for inspection.
type Pipeline struct {
	logger *slog.Logger
	stages []Stage
}

// New constructs a pipeline over the given stages.
func New(logger *slog.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{
		logger: logging.NewComponentLogger(logger, "pipeline"),
		stages: stages,
	}
}

// Run executes every stage in sequence. The first stage error aborts the run
// and is returned to the caller unchanged.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := p.logger.With(logging.FieldRunID, runID)
	started := time.Now()
	logger.Info("run started", logging.Int("stages", len(p.stages)))

	for i, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline canceled before stage %s: %w", stage.Name(), err)
		}

		stageStarted := time.Now()
		logger.Info("stage started",
			logging.String(logging.FieldStage, stage.Name()),
			logging.Int("position", i+1))

		if err := stage.Run(ctx); err != nil {
			logger.Error("stage failed",
				logging.String(logging.FieldStage, stage.Name()),
				logging.String("kind", services.Kind(err)),
				logging.Duration("elapsed", time.Since(stageStarted)),
				logging.Error(err))
			return err
		}

		logger.Info("stage finished",
			logging.String(logging.FieldStage, stage.Name()),
			logging.Duration("elapsed", time.Since(stageStarted)))
	}

	logger.Info("run finished", logging.Duration("elapsed", time.Since(started)))
	return nil
}
