package cmd

import (
	"fmt"

	"github.com/jacricelli/mdf4-converters/converter"
	"github.com/jacricelli/mdf4-converters/internal/input"
	"github.com/jacricelli/mdf4-converters/internal/logging"
)

// parseOptions applies the driver's own options: logging, common options and
// the input list.
func (d *driver) parseOptions(cwd string) converter.Status {
	m := d.values
	if m.Bool("help") {
		return converter.DisplayHelp
	}
	if m.Bool("version") {
		return converter.DisplayVersion
	}

	verbose := m.Int("verbose")
	level, ok := logging.Verbosity(verbose)
	if !ok {
		d.unrecognized = append(d.unrecognized, fmt.Sprintf("--verbose=%d", verbose))
		return converter.UnrecognizedOption
	}
	d.logger.SetLevel(level)

	format := m.String("log-format")
	if err := logging.SetFormat(d.logger, format); err != nil {
		d.unrecognized = append(d.unrecognized, "--log-format="+format)
		return converter.UnrecognizedOption
	}

	d.common.NonInteractive = m.Bool("non-interactive")
	d.common.DisplayTimeFormat = converter.ParseTimeFormat(m.String("timezone"))

	switch {
	case m.Has("input-directory"):
		dir, files, err := input.ScanDirectory(m.String("input-directory"), cwd)
		if err != nil {
			fmt.Fprintln(d.stdout, dir)
			d.logger.Error("Cannot read input directory.", "path", dir, "err", err)
			return converter.NoError
		}
		d.inputs = files
	case m.Has("input-files"):
		d.inputs = m.Strings("input-files")
	default:
		return converter.NoInputFiles
	}
	return converter.NoError
}
