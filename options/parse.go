package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// MissingArgumentError reports a known option given without its value.
type MissingArgumentError struct {
	Option string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument for option '%s'", e.Option)
}

// Split separates args into the tokens fs knows about and the option tokens
// it does not. Unknown tokens are dropped from known and returned as written.
// Everything after "--" is kept as positional.
func Split(fs *pflag.FlagSet, args []string) (known, unknown []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			known = append(known, args[i:]...)
			return known, unknown, nil
		case len(arg) < 2 || arg[0] != '-':
			known = append(known, arg)
		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			f := fs.Lookup(name)
			if f == nil {
				unknown = append(unknown, arg)
				continue
			}
			known = append(known, arg)
			if inline || !takesValue(f) {
				continue
			}
			if i+1 >= len(args) {
				return nil, unknown, &MissingArgumentError{Option: f.Name}
			}
			i++
			known = append(known, args[i])
		default:
			f, recognized, needsNext := scanShorthands(fs, arg[1:])
			if !recognized {
				unknown = append(unknown, arg)
				continue
			}
			known = append(known, arg)
			if !needsNext {
				continue
			}
			if i+1 >= len(args) {
				return nil, unknown, &MissingArgumentError{Option: f.Name}
			}
			i++
			known = append(known, args[i])
		}
	}
	return known, unknown, nil
}

// scanShorthands walks a group such as "hv" or "tu" the way pflag does: the
// first shorthand that takes a value consumes the rest of the group, or the
// next argument when the group ends there.
func scanShorthands(fs *pflag.FlagSet, group string) (last *pflag.Flag, recognized, needsNext bool) {
	for j := 0; j < len(group); j++ {
		f := fs.ShorthandLookup(group[j : j+1])
		if f == nil {
			return nil, false, false
		}
		last = f
		if takesValue(f) {
			return f, true, j == len(group)-1
		}
	}
	return last, true, false
}

func takesValue(f *pflag.Flag) bool {
	return f.NoOptDefVal == ""
}

// ParseArgs parses args against s. Option tokens unknown to s are returned
// rather than failing the parse, and positional arguments are appended to
// the schema's positional option. A schema without one reports positional
// arguments as unknown.
func ParseArgs(s *Schema, name string, args []string) (*pflag.FlagSet, []string, error) {
	fs := s.FlagSet(name)
	known, unknown, err := Split(fs, args)
	if err != nil {
		return nil, unknown, err
	}
	if err := fs.Parse(known); err != nil {
		return nil, unknown, err
	}
	for _, arg := range fs.Args() {
		if s.positional == "" {
			unknown = append(unknown, arg)
			continue
		}
		if err := fs.Set(s.positional, arg); err != nil {
			return nil, unknown, err
		}
	}
	return fs, unknown, nil
}
