package main

import (
	"io"
	"os"

	"github.com/jacricelli/mdf4-converters/cmd"
	"github.com/jacricelli/mdf4-converters/internal/convert"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return cmd.Execute(convert.NewDryRun(), args, stdout, stderr)
}
