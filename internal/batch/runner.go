package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/timkrebs/appstore-screenshots/internal/models"
	"github.com/timkrebs/appstore-screenshots/internal/processor"
	"github.com/timkrebs/appstore-screenshots/internal/storage"
)

// Runner converts every input screenshot to every target size
type Runner struct {
	processor *processor.Processor
	storage   *storage.Storage
	logger    *slog.Logger
	inputs    []string
	sizes     []models.Size
	manifest  io.Writer
}

// Config holds batch runner configuration
type Config struct {
	Inputs      []string
	Sizes       []models.Size
	ManifestOut io.Writer
}

// NewRunner creates a new batch runner. Zero-value config fields fall back
// to the fixed screenshot list, the App Store size table and stdout.
func NewRunner(proc *processor.Processor, store *storage.Storage, cfg Config, logger *slog.Logger) *Runner {
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = models.DefaultScreenshots
	}
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = models.AppStoreSizes
	}
	if cfg.ManifestOut == nil {
		cfg.ManifestOut = os.Stdout
	}

	return &Runner{
		processor: proc,
		storage:   store,
		logger:    logger,
		inputs:    cfg.Inputs,
		sizes:     cfg.Sizes,
		manifest:  cfg.ManifestOut,
	}
}

// Summary holds the outcome counts of one batch run
type Summary struct {
	Converted int
	Missing   int
	Failed    int
}

// Run converts all inputs sequentially, one (input, size) pair at a time.
// A missing input skips that input, any other failure skips only its pair;
// the batch always runs to completion and then prints the upload manifest.
func (r *Runner) Run() Summary {
	startTime := time.Now()
	r.logger.Info("starting conversion", "inputs", len(r.inputs), "sizes", len(r.sizes))

	var summary Summary
	for _, input := range r.inputs {
		if _, err := os.Stat(input); err != nil {
			r.logger.Warn("input not found, skipping", "input", input)
			summary.Missing++
			continue
		}

		logger := r.logger.With("input", input)
		logger.Info("processing input")

		for _, size := range r.sizes {
			path, placement, err := r.convert(input, size)
			if err != nil {
				logger.Error("conversion failed", "size", size.String(), "error", err)
				summary.Failed++
				continue
			}
			logger.Info("created",
				"output", path,
				"size", size.String(),
				"content_width", placement.Width,
				"content_height", placement.Height,
			)
			summary.Converted++
		}
	}

	duration := time.Since(startTime)
	r.logger.Info("conversion completed",
		"duration_ms", duration.Milliseconds(),
		"converted", summary.Converted,
		"missing", summary.Missing,
		"failed", summary.Failed,
	)

	r.printManifest()
	return summary
}

// convert renders one input at one size and writes the result
func (r *Runner) convert(input string, size models.Size) (string, processor.Placement, error) {
	f, err := os.Open(input)
	if err != nil {
		return "", processor.Placement{}, fmt.Errorf("failed to open %s: %w", input, err)
	}
	defer f.Close()

	result, err := r.processor.Process(f, size)
	if err != nil {
		return "", processor.Placement{}, err
	}

	path, err := r.storage.Save(models.OutputName(input, size), result.Data)
	if err != nil {
		return "", processor.Placement{}, err
	}
	return path, result.Placement, nil
}

// printManifest lists every expected output name for every (input, size)
// pair, regardless of how the pairs fared
func (r *Runner) printManifest() {
	fmt.Fprintln(r.manifest, "Upload these files to App Store Connect:")
	for _, input := range r.inputs {
		for _, size := range r.sizes {
			fmt.Fprintf(r.manifest, "  - %s\n", models.OutputName(input, size))
		}
	}
}
