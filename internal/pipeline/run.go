// Package pipeline provides the high-level orchestration for the homepage build.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/scholar-homepage/internal/aggregate"
	"github.com/jonathan/scholar-homepage/internal/classify"
	"github.com/jonathan/scholar-homepage/internal/config"
	"github.com/jonathan/scholar-homepage/internal/loading"
	"github.com/jonathan/scholar-homepage/internal/logging"
	"github.com/jonathan/scholar-homepage/internal/observability"
	"github.com/jonathan/scholar-homepage/internal/rendering"
	"github.com/jonathan/scholar-homepage/internal/types"
)

// Build steps reported through ProgressEvent.
const (
	StepLoad      = "load"
	StepClassify  = "classify"
	StepAggregate = "aggregate"
	StepRender    = "render"
	StepWrite     = "write"
)

// ProgressEvent represents a progress update during a build
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when build progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running a build
type Options struct {
	Config     config.Config
	Logger     *zap.Logger
	Out        io.Writer // verbose summaries; defaults to os.Stdout
	OnProgress ProgressCallback
}

// Processed holds the classified, sorted records and their statistics.
type Processed struct {
	Papers    []types.Publication
	Preprints []types.Publication
	Stats     types.Stats
}

// Result describes a completed build.
type Result struct {
	Processed
	OutputPath string
	Bytes      int
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

func paths(cfg config.Config) loading.Paths {
	return loading.Paths{
		Config:    cfg.Config,
		Rankings:  cfg.Rankings,
		Papers:    cfg.Papers,
		Preprints: cfg.Preprints,
	}
}

// Process classifies both record sets, computes statistics over the published
// set only, and sorts each set by year, most recent first.
func Process(inputs *loading.Inputs) *Processed {
	papers := classify.ClassifyAll(inputs.Papers, inputs.Rankings)
	preprints := classify.ClassifyPreprints(inputs.Preprints, inputs.Rankings)

	stats := aggregate.Compute(papers)

	aggregate.SortByYear(papers)
	aggregate.SortByYear(preprints)

	return &Processed{
		Papers:    papers,
		Preprints: preprints,
		Stats:     stats,
	}
}

// Load reads and validates the build inputs without rendering anything.
func Load(ctx context.Context, opts Options) (*loading.Inputs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger := logging.OrNop(opts.Logger)
	logger.Debug("Loading inputs",
		zap.String("config", opts.Config.Config),
		zap.String("rankings", opts.Config.Rankings),
		zap.String("papers", opts.Config.Papers),
		zap.String("preprints", opts.Config.Preprints))

	inputs, err := loading.Load(paths(opts.Config))
	if err != nil {
		return nil, fmt.Errorf("loading inputs failed: %w", err)
	}

	logger.Info("Loaded inputs",
		zap.Int("rules", len(inputs.Rankings)),
		zap.Int("papers", len(inputs.Papers)),
		zap.Int("preprints", len(inputs.Preprints)))
	emitProgress(&opts, StepLoad,
		fmt.Sprintf("Loaded %d papers, %d preprints, %d ranking rules", len(inputs.Papers), len(inputs.Preprints), len(inputs.Rankings)), nil)

	return inputs, nil
}

// Run executes the full build and writes the rendered page. Any failure
// aborts the build before the output file is touched.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.OrNop(opts.Logger)
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	inputs, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.Config.Verbose {
		printer.PrintRankings(inputs.Rankings)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	processed := Process(inputs)
	emitProgress(&opts, StepClassify,
		fmt.Sprintf("Classified %d papers and %d preprints", len(processed.Papers), len(processed.Preprints)), nil)
	emitProgress(&opts, StepAggregate,
		fmt.Sprintf("Total=%d, CCF=%d", processed.Stats.Total, processed.Stats.CCFTotal), processed.Stats)
	logger.Debug("Computed stats", zap.Any("stats", processed.Stats))

	if opts.Config.Verbose {
		printer.PrintStats(processed.Stats)
		printer.PrintPublications("PUBLISHED", processed.Papers)
		printer.PrintPublications("PREPRINTS", processed.Preprints)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := rendering.NewTemplateData(inputs.Site, processed.Papers, processed.Preprints, processed.Stats)
	html, err := rendering.RenderHTML(data, opts.Config.Template)
	if err != nil {
		return nil, fmt.Errorf("rendering page failed: %w", err)
	}
	emitProgress(&opts, StepRender, "Rendered homepage", nil)

	if err := writeOutput(opts.Config.Output, html); err != nil {
		return nil, err
	}
	logger.Info("Wrote homepage", zap.String("path", opts.Config.Output), zap.Int("bytes", len(html)))
	emitProgress(&opts, StepWrite, fmt.Sprintf("Wrote %s", opts.Config.Output), nil)

	return &Result{
		Processed:  *processed,
		OutputPath: opts.Config.Output,
		Bytes:      len(html),
	}, nil
}

// writeOutput writes the page, creating the output directory if needed.
func writeOutput(path, html string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
