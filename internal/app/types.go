package app

import (
	"github.com/charmbracelet/log"

	"github.com/jacricelli/mdf4-converters/converter"
	"github.com/jacricelli/mdf4-converters/internal/job"
)

type Options struct {
	Inputs    []string
	OutputDir string
	CWD       string
	Converter converter.Converter
	Logger    *log.Logger
}

type Result struct {
	Converted []job.Task
	// Missing lists the absolute paths of inputs that did not exist.
	Missing []string
}
