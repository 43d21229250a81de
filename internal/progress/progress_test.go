package progress

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacricelli/mdf4-converters/converter"
)

func TestRenderPartial(t *testing.T) {
	got := Render(1, 4, Width)
	want := "\r" + strings.Repeat("=", 20) + ">" + strings.Repeat(" ", 59) + " 1 / 4"
	require.Equal(t, want, got)
}

func TestRenderStartAndEnd(t *testing.T) {
	start := Render(0, 3, Width)
	require.Equal(t, "\r>"+strings.Repeat(" ", 79)+" 0 / 3", start)

	end := Render(3, 3, Width)
	require.Equal(t, "\r"+strings.Repeat("=", 80)+" 3 / 3\n", end)
}

func TestRenderFloorsFill(t *testing.T) {
	frame := Render(2, 3, Width)
	require.Equal(t, 53, strings.Count(frame, "="))
	require.True(t, strings.HasPrefix(frame, "\r"+strings.Repeat("=", 53)+">"))
	require.Equal(t, 1+Width+len(" 2 / 3"), len(frame))
}

func TestBarOnlyFinalFrameEndsWithNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	bar := New(buf, &converter.CommonOptions{})

	total := 7
	for i := 0; i <= total; i++ {
		bar.Update(i, total)
	}
	frames := strings.Split(buf.String(), "\r")[1:]
	require.Len(t, frames, total+1)
	for _, f := range frames[:total] {
		require.False(t, strings.HasSuffix(f, "\n"))
	}
	require.True(t, strings.HasSuffix(frames[total], "\n"))
}

func TestBarNonInteractiveIsSilent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	bar := New(buf, &converter.CommonOptions{NonInteractive: true})
	bar.Update(1, 2)
	bar.Update(2, 2)
	require.Empty(t, buf.String())
}

func TestBarFlushesBufferedWriters(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	w := bufio.NewWriter(buf)
	bar := New(w, &converter.CommonOptions{})
	bar.Update(1, 2)
	require.Contains(t, buf.String(), " 1 / 2")
}

func TestBarIgnoresEmptyTotal(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	New(buf, nil).Update(0, 0)
	require.Empty(t, buf.String())
}
