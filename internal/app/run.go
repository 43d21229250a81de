package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jacricelli/mdf4-converters/internal/input"
	"github.com/jacricelli/mdf4-converters/internal/job"
	"github.com/jacricelli/mdf4-converters/internal/logging"
	"github.com/jacricelli/mdf4-converters/internal/plan"
)

// Run converts the inputs one after the other, in order. A missing input is
// logged and skipped. An output folder that cannot be created or a failed
// conversion stops the run and is returned as the error; the result then
// holds what was done so far.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Converter == nil {
		return Result{}, fmt.Errorf("no converter configured")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	cwd := strings.TrimSpace(opts.CWD)
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Result{}, fmt.Errorf("read working directory: %w", err)
		}
		cwd = wd
	}

	planOpts := plan.Options{
		OutputDir: opts.OutputDir,
		CWD:       cwd,
		OnCreate: func(dir string) {
			logger.Info("Output folder does not exist, creating it.", "path", dir)
		},
	}

	result := Result{
		Converted: make([]job.Task, 0, len(opts.Inputs)),
		Missing:   make([]string, 0),
	}
	for _, raw := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		src, err := input.Resolve(raw, cwd)
		if errors.Is(err, input.ErrInputAbsent) {
			logger.Error("File does not exist.", "path", src.SourcePath)
			result.Missing = append(result.Missing, src.SourcePath)
			continue
		}

		task, err := plan.BuildTarget(src, planOpts)
		if err != nil {
			return result, err
		}

		logger.Debug("Converting file.", "input", task.SourcePath, "output", task.OutputDir)
		res := convertOne(ctx, opts, task)
		if res.Error != nil {
			return result, fmt.Errorf("error during conversion of %q: %w", task.SourcePath, res.Error)
		}
		logging.Trace(logger, "Conversion finished.", "input", task.SourcePath)
		result.Converted = append(result.Converted, task)
	}
	return result, nil
}

func convertOne(ctx context.Context, opts Options, task job.Task) job.Result {
	return job.Result{
		Task:  task,
		Error: opts.Converter.Convert(ctx, task.SourcePath, task.OutputDir),
	}
}
