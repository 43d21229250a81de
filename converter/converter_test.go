package converter

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestParseTimeFormatFirstCharacter(t *testing.T) {
	cases := map[string]TimeFormat{
		"":        LoggerLocalTime,
		"l":       LoggerLocalTime,
		"u":       UTC,
		"utc":     UTC,
		"p":       PCLocalTime,
		"pacific": PCLocalTime,
		"x":       LoggerLocalTime,
		"U":       LoggerLocalTime,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseTimeFormat(in), "input %q", in)
	}
}

func TestTimeFormatLocation(t *testing.T) {
	berlin := time.FixedZone("logger", 3600)
	require.Equal(t, time.UTC, UTC.Location(berlin))
	require.Equal(t, time.Local, PCLocalTime.Location(berlin))
	require.Equal(t, berlin, LoggerLocalTime.Location(berlin))
	require.Equal(t, time.UTC, LoggerLocalTime.Location(nil))
}

func TestStatusPriorityFlags(t *testing.T) {
	s := NoError
	require.False(t, s.Has(DisplayHelp))
	require.Equal(t, "ok", s.String())

	s |= DisplayVersion
	s |= UnrecognizedOption
	require.True(t, s.Has(DisplayVersion))
	require.True(t, s.Has(UnrecognizedOption))
	require.False(t, s.Has(DisplayHelp))
	require.False(t, s.Has(NoError))
	require.Equal(t, "unrecognized-option|version", s.String())
}

func TestBaseDefaults(t *testing.T) {
	var b Base
	require.False(t, b.UsesConfigFile())
	status, err := b.ParseOptions(nil)
	require.NoError(t, err)
	require.Equal(t, NoError, status)
	require.Same(t, log.Default(), b.Logger())

	b.ReportProgress(1, 2)

	var got [][2]int
	b.RegisterProgressCallback(func(current, total int) { got = append(got, [2]int{current, total}) })
	b.ReportProgress(1, 2)
	b.ReportProgress(0, 0)
	require.Equal(t, [][2]int{{1, 2}}, got)

	l := log.New(io.Discard)
	b.SetCommonOptions(&CommonOptions{Logger: l})
	require.Same(t, l, b.Logger())
}
