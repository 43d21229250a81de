package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const usageSuffix = " [-short-option value --long-option value] [-i] file_a [file_b ...]"

const helpTemplate = `Usage:
{{.UseLine}}:

Short options start with a single "-", while long options start with "--".
A value enclosed in "[]" signifies it is optional.
Some options only exists in the long form, while others exist in both forms.
Not all options require arguments (arg).

Allowed options:
{{.Flags.FlagUsages | trimTrailingWhitespaces}}
`

func printUnrecognized(w io.Writer, cmd *cobra.Command, unrecognized []string) error {
	if len(unrecognized) == 1 {
		fmt.Fprintln(w, "Unrecognized option:")
	} else {
		fmt.Fprintln(w, "Unrecognized options:")
	}
	for _, opt := range unrecognized {
		fmt.Fprintln(w, opt)
	}
	fmt.Fprintln(w)
	return cmd.Help()
}
