// Package progress draws a single-line text progress bar.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacricelli/mdf4-converters/converter"
)

// Width is the number of bar slots, excluding the counter.
const Width = 80

type flusher interface {
	Flush() error
}

// Bar redraws the current line of w on every update. It stays silent when
// the common options ask for non-interactive mode.
type Bar struct {
	w      io.Writer
	common *converter.CommonOptions
}

func New(w io.Writer, common *converter.CommonOptions) *Bar {
	return &Bar{w: w, common: common}
}

// Update draws current out of total. The line is terminated once current
// reaches total.
func (b *Bar) Update(current, total int) {
	if b.common != nil && b.common.NonInteractive {
		return
	}
	if total <= 0 {
		return
	}
	_, _ = io.WriteString(b.w, Render(current, total, Width))
	if f, ok := b.w.(flusher); ok {
		_ = f.Flush()
	}
}

// Render returns one frame: a carriage return, floor(current/total*width)
// "=" slots, a ">" tip while incomplete, padding up to width, then the
// counter. The final frame ends with a newline.
func Render(current, total, width int) string {
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	fill := current * width / total

	var sb strings.Builder
	sb.WriteByte('\r')
	if current == total {
		sb.WriteString(strings.Repeat("=", width))
	} else {
		sb.WriteString(strings.Repeat("=", fill))
		sb.WriteByte('>')
		sb.WriteString(strings.Repeat(" ", width-fill-1))
	}
	fmt.Fprintf(&sb, " %d / %d", current, total)
	if current == total {
		sb.WriteByte('\n')
	}
	return sb.String()
}
