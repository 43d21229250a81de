package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacricelli/mdf4-converters/internal/fsutil"
	"github.com/jacricelli/mdf4-converters/internal/input"
	"github.com/jacricelli/mdf4-converters/internal/job"
)

type Options struct {
	// OutputDir is the user's output directory; empty places every output
	// next to its input.
	OutputDir string
	CWD       string
	// OnCreate is called before a missing output directory is created.
	OnCreate func(dir string)
}

// BuildTarget decides where the output of src goes. An explicit output
// directory is made absolute and created, with its parents, when missing.
func BuildTarget(src input.SourceItem, opts Options) (job.Task, error) {
	task := job.Task{SourcePath: src.SourcePath}
	outputArg := strings.TrimSpace(opts.OutputDir)
	if outputArg == "" {
		task.OutputDir = filepath.Dir(src.SourcePath)
		return task, nil
	}

	outDir := fsutil.WeaklyCanonical(opts.CWD, outputArg)
	if !fsutil.Exists(outDir) {
		if opts.OnCreate != nil {
			opts.OnCreate(outDir)
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return task, fmt.Errorf("could not create output folder %q: %w", outDir, err)
		}
	} else if !fsutil.IsDir(outDir) {
		return task, fmt.Errorf("output folder %q is not a directory", outDir)
	}
	task.OutputDir = outDir
	return task, nil
}
