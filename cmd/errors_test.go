package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitUnrecognized, ExitCode(&ExitError{Code: ExitUnrecognized}))
	require.Equal(t, ExitMissingInput, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: ExitMissingInput})))
	require.Equal(t, ExitFatal, ExitCode(errors.New("boom")))
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExitError{Code: ExitFatal, Err: cause}
	require.ErrorIs(t, err, cause)
	require.Equal(t, "disk full", err.Error())
	require.Equal(t, "exit code 1", (&ExitError{Code: 1}).Error())
}
