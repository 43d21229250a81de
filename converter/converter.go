// Package converter defines what a conversion tool plugs into the shared
// command-line driver.
package converter

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jacricelli/mdf4-converters/options"
)

// ProgressFunc receives progress of the file being converted, with
// 0 <= current <= total and total > 0.
type ProgressFunc func(current, total int)

// Converter is implemented by every conversion tool. The driver calls the
// configuration methods once at startup, SetCommonOptions and ParseOptions
// once after parsing, and Convert once per input file, sequentially.
//
// Option names reserved by the driver must not be contributed again.
type Converter interface {
	// ProgramName is used in help output and to find the config file.
	ProgramName() string
	Version() string
	UsesConfigFile() bool
	ConfigureParser(s *options.Schema)
	ConfigureFileParser(s *options.Schema)
	SetCommonOptions(common *CommonOptions)
	ParseOptions(m *options.Map) (Status, error)
	RegisterProgressCallback(fn ProgressFunc)
	// Convert converts input into outputDir. Both paths are absolute and
	// outputDir exists.
	Convert(ctx context.Context, input, outputDir string) error
}

// Base gives converters no-op defaults for the optional hooks and keeps the
// common options and progress callback handed over by the driver.
type Base struct {
	Common   *CommonOptions
	Progress ProgressFunc
}

func (b *Base) UsesConfigFile() bool { return false }

func (b *Base) ConfigureParser(*options.Schema) {}

func (b *Base) ConfigureFileParser(*options.Schema) {}

func (b *Base) SetCommonOptions(common *CommonOptions) { b.Common = common }

func (b *Base) ParseOptions(*options.Map) (Status, error) { return NoError, nil }

func (b *Base) RegisterProgressCallback(fn ProgressFunc) { b.Progress = fn }

func (b *Base) ReportProgress(current, total int) {
	if b.Progress != nil && total > 0 {
		b.Progress(current, total)
	}
}

// Logger returns the driver's logger, or the package default before the
// driver has handed one over.
func (b *Base) Logger() *log.Logger {
	if b.Common != nil && b.Common.Logger != nil {
		return b.Common.Logger
	}
	return log.Default()
}
