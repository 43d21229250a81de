package cmd

import (
	"github.com/jacricelli/mdf4-converters/internal/logging"
	"github.com/jacricelli/mdf4-converters/options"
)

// reservedOptions are the command-line options owned by the driver.
// Converters must not declare these names again.
func reservedOptions() *options.Schema {
	return options.NewSchema(options.CommandLine).Add(
		options.Switch("help,h", "Print this help message."),
		options.Switch("version,v", "Print version information."),
		options.Int("verbose", "Set verbosity of output (0-5).").WithDefault(logging.DefaultVerbosity),
		options.String("log-format", "Log output format: text, json or logfmt.").WithDefault("text"),
		options.String("input-directory,I", "Input directory to convert files from."),
		options.String("output-directory,O", "Output directory to place converted files into."),
		options.Switch("non-interactive", "Run in non-interactive mode, with no progress output."),
		options.String("timezone,t", "Display times in UTC (u), logger localtime (l, default) or PC local time (p).").WithDefault("l"),
		options.Strings("input-files,i", "List of files to convert, ignored if input-directory is specified. All positional arguments are added to it."),
	).Positional("input-files")
}
