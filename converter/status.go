package converter

import "strings"

// Status accumulates parse outcomes. The driver resolves them in the order
// UnrecognizedOption, DisplayHelp, DisplayVersion, NoInputFiles.
type Status uint8

const NoError Status = 0

const (
	DisplayHelp Status = 1 << iota
	DisplayVersion
	NoInputFiles
	UnrecognizedOption
)

func (s Status) Has(f Status) bool {
	return f != NoError && s&f == f
}

func (s Status) String() string {
	if s == NoError {
		return "ok"
	}
	var parts []string
	for _, f := range []struct {
		flag Status
		name string
	}{
		{UnrecognizedOption, "unrecognized-option"},
		{DisplayHelp, "help"},
		{DisplayVersion, "version"},
		{NoInputFiles, "no-input-files"},
	} {
		if s.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
