package converter

import (
	"time"

	"github.com/charmbracelet/log"
)

// TimeFormat selects the time zone timestamps are displayed in.
type TimeFormat int

const (
	LoggerLocalTime TimeFormat = iota
	UTC
	PCLocalTime
)

// ParseTimeFormat looks at the first character only: 'u' is UTC, 'p' is the
// PC's local time, anything else the logger's local time.
func ParseTimeFormat(s string) TimeFormat {
	if s == "" {
		return LoggerLocalTime
	}
	switch s[0] {
	case 'u':
		return UTC
	case 'p':
		return PCLocalTime
	default:
		return LoggerLocalTime
	}
}

func (f TimeFormat) String() string {
	switch f {
	case UTC:
		return "utc"
	case PCLocalTime:
		return "pc-local"
	default:
		return "logger-local"
	}
}

// Location returns the zone to display times in. logger is the zone the
// recording device used; nil falls back to UTC.
func (f TimeFormat) Location(logger *time.Location) *time.Location {
	switch f {
	case UTC:
		return time.UTC
	case PCLocalTime:
		return time.Local
	default:
		if logger != nil {
			return logger
		}
		return time.UTC
	}
}

// CommonOptions are the parsed settings shared by the driver and the
// converter. They are read-only once conversion starts.
type CommonOptions struct {
	NonInteractive    bool
	DisplayTimeFormat TimeFormat
	Logger            *log.Logger
}
