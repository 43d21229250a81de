package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jacricelli/mdf4-converters/converter"
	"github.com/jacricelli/mdf4-converters/internal/app"
	"github.com/jacricelli/mdf4-converters/internal/configfile"
	"github.com/jacricelli/mdf4-converters/internal/logging"
	"github.com/jacricelli/mdf4-converters/internal/progress"
	"github.com/jacricelli/mdf4-converters/options"
)

type Option func(*driver)

// WithWorkDir resolves relative paths and the config file against dir
// instead of the process working directory.
func WithWorkDir(dir string) Option {
	return func(d *driver) { d.workDir = dir }
}

func WithLogger(l *log.Logger) Option {
	return func(d *driver) { d.logger = l }
}

type driver struct {
	conv     converter.Converter
	cmdline  *options.Schema
	file     *options.Schema
	stdout   io.Writer
	stderr   io.Writer
	logger   *log.Logger
	workDir  string
	common   *converter.CommonOptions
	progress *progress.Bar

	values       *options.Map
	inputs       []string
	unrecognized []string
}

// Execute runs conv against args and returns the process exit code.
func Execute(conv converter.Converter, args []string, stdout, stderr io.Writer, opts ...Option) int {
	root := NewRootCmd(conv, stdout, stderr, opts...)
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return ExitCode(root.Execute())
}

func NewRootCmd(conv converter.Converter, stdout io.Writer, stderr io.Writer, opts ...Option) *cobra.Command {
	d := &driver{
		conv:   conv,
		stdout: stdout,
		stderr: stderr,
		common: &converter.CommonOptions{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.New(stderr)
	}
	d.common.Logger = d.logger
	d.progress = progress.New(stdout, d.common)
	conv.RegisterProgressCallback(d.progress.Update)

	d.cmdline = reservedOptions()
	d.file = options.NewSchema(options.ConfigFile)
	conv.ConfigureParser(d.cmdline)
	conv.ConfigureFileParser(d.file)

	root := &cobra.Command{
		Use:                   conv.ProgramName() + usageSuffix,
		Short:                 fmt.Sprintf("%s %s", conv.ProgramName(), conv.Version()),
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.run(cmd, args)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpTemplate(helpTemplate)
	root.Flags().SortFlags = false
	d.cmdline.AddTo(root.Flags())
	return root
}

func (d *driver) reset() {
	d.values = options.NewMap()
	d.inputs = nil
	d.unrecognized = nil
	*d.common = converter.CommonOptions{Logger: d.logger}
	d.logger.SetFormatter(log.TextFormatter)
	if level, ok := logging.Verbosity(logging.DefaultVerbosity); ok {
		d.logger.SetLevel(level)
	}
}

func (d *driver) cwd() (string, error) {
	if strings.TrimSpace(d.workDir) != "" {
		return d.workDir, nil
	}
	return os.Getwd()
}

func (d *driver) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	d.reset()

	cwd, err := d.cwd()
	if err != nil {
		return d.fatal("Could not read the working directory.", err)
	}

	// The command line accepts config-file options too, so every option
	// with a default ends up in the map.
	all := options.Union(d.cmdline, d.file)
	fs, unknown, err := options.ParseArgs(all, d.conv.ProgramName(), args)
	if err != nil {
		return d.parseFailure(err)
	}
	d.unrecognized = unknown
	if err := d.values.Store(all, fs, options.SourceCommandLine); err != nil {
		return d.fatal("Error occurred during initial input argument parsing.", err)
	}

	missingConfig := ""
	if d.conv.UsesConfigFile() {
		path, found := configfile.Find(cwd, d.conv.ProgramName())
		if !found {
			missingConfig = path
		} else if err := d.loadConfigFile(path); err != nil {
			return d.fatal("Error during parsing of configuration file.", err)
		}
	}

	status := converter.NoError
	if len(args) == 0 {
		status |= converter.DisplayHelp
	}
	status |= d.parseOptions(cwd)

	d.conv.SetCommonOptions(d.common)
	convStatus, err := d.conv.ParseOptions(d.values)
	if err != nil {
		return d.fatal("Error occurred during specialized input argument parsing.", err)
	}
	status |= convStatus

	if len(d.unrecognized) > 0 {
		status |= converter.UnrecognizedOption
	}
	// Logged only now so the verbosity from the options applies.
	if missingConfig != "" {
		d.logger.Info("No configuration file found, skipping.", "path", missingConfig)
	}
	d.logger.Debug("Options parsed.", "status", status, "inputs", len(d.inputs))

	switch {
	case status.Has(converter.UnrecognizedOption):
		if err := printUnrecognized(d.stdout, cmd, d.unrecognized); err != nil {
			return err
		}
		return &ExitError{Code: ExitUnrecognized}
	case status.Has(converter.DisplayHelp):
		return cmd.Help()
	case status.Has(converter.DisplayVersion):
		printVersion(d.stdout, d.conv.ProgramName(), d.conv.Version())
		return nil
	case status.Has(converter.NoInputFiles):
		return nil
	}

	res, err := app.Run(ctx, app.Options{
		Inputs:    d.inputs,
		OutputDir: d.values.String("output-directory"),
		CWD:       cwd,
		Converter: d.conv,
		Logger:    d.logger,
	})
	if err != nil {
		return d.fatal("Conversion aborted.", err)
	}
	if len(res.Missing) > 0 {
		return &ExitError{Code: ExitMissingInput, Err: fmt.Errorf("%d input file(s) not found", len(res.Missing))}
	}
	d.logger.Info("Conversion finished.", "files", len(res.Converted))
	return nil
}

func (d *driver) loadConfigFile(path string) error {
	fs, err := configfile.Load(path, d.file)
	if err != nil {
		return err
	}
	d.logger.Debug("Configuration file loaded.", "path", path)
	return d.values.Store(d.file, fs, options.SourceConfigFile)
}

func (d *driver) parseFailure(err error) error {
	var missing *options.MissingArgumentError
	if errors.As(err, &missing) {
		d.logger.Error("Missing argument for option.", "option", missing.Option)
		fmt.Fprintf(d.stdout, "Missing argument for option '%s'\n", missing.Option)
		return &ExitError{Code: ExitFatal, Err: err}
	}
	return d.fatal("Error occurred during initial input argument parsing.", err)
}

func (d *driver) fatal(msg string, err error) error {
	logging.Fatal(d.logger, msg, "err", err)
	return &ExitError{Code: ExitFatal, Err: err}
}
