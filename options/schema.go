// Package options describes the options a tool accepts and holds the values
// parsed from the command line and the configuration file.
package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindStringList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Scope says where an option may be given.
type Scope uint8

const (
	CommandLine Scope = 1 << iota
	ConfigFile

	Both = CommandLine | ConfigFile
)

// Option describes a single named option. A nil Default means the option is
// absent from the parsed map unless a source provides it.
type Option struct {
	Name    string
	Short   string
	Kind    Kind
	Default any
	Help    string
	Scope   Scope
}

// Switch declares a boolean option defaulting to false. spec is "long" or
// "long,s".
func Switch(spec, help string) Option {
	return newOption(spec, KindBool, help).WithDefault(false)
}

func Int(spec, help string) Option {
	return newOption(spec, KindInt, help)
}

func String(spec, help string) Option {
	return newOption(spec, KindString, help)
}

func Strings(spec, help string) Option {
	return newOption(spec, KindStringList, help)
}

func newOption(spec string, kind Kind, help string) Option {
	name, short, _ := strings.Cut(spec, ",")
	return Option{Name: name, Short: short, Kind: kind, Help: help}
}

func (o Option) WithDefault(v any) Option {
	o.Default = v
	return o
}

func (o Option) validate() error {
	if o.Name == "" {
		return fmt.Errorf("option without a name")
	}
	if len(o.Short) > 1 {
		return fmt.Errorf("option %q: short name %q is longer than one character", o.Name, o.Short)
	}
	if o.Default == nil {
		return nil
	}
	ok := false
	switch o.Kind {
	case KindBool:
		_, ok = o.Default.(bool)
	case KindString:
		_, ok = o.Default.(string)
	case KindInt:
		_, ok = o.Default.(int)
	case KindStringList:
		_, ok = o.Default.([]string)
	default:
		return fmt.Errorf("option %q: unknown kind %s", o.Name, o.Kind)
	}
	if !ok {
		return fmt.Errorf("option %q: default %T does not match kind %s", o.Name, o.Default, o.Kind)
	}
	return nil
}

// Schema is an ordered set of options for one scope. Declaring an option
// twice, or reusing a short name, panics.
type Schema struct {
	scope      Scope
	options    []Option
	byName     map[string]int
	byShort    map[string]string
	positional string
}

func NewSchema(scope Scope) *Schema {
	return &Schema{
		scope:   scope,
		byName:  make(map[string]int),
		byShort: make(map[string]string),
	}
}

func (s *Schema) Add(opts ...Option) *Schema {
	for _, o := range opts {
		if err := o.validate(); err != nil {
			panic("options: " + err.Error())
		}
		if _, dup := s.byName[o.Name]; dup {
			panic(fmt.Sprintf("options: option %q declared twice", o.Name))
		}
		if o.Short != "" {
			if owner, dup := s.byShort[o.Short]; dup {
				panic(fmt.Sprintf("options: short name %q of %q already used by %q", o.Short, o.Name, owner))
			}
			s.byShort[o.Short] = o.Name
		}
		if o.Scope == 0 {
			o.Scope = s.scope
		}
		s.byName[o.Name] = len(s.options)
		s.options = append(s.options, o)
	}
	return s
}

// Positional routes every positional argument to the named list option,
// without an upper bound.
func (s *Schema) Positional(name string) *Schema {
	o, ok := s.Lookup(name)
	if !ok || o.Kind != KindStringList {
		panic(fmt.Sprintf("options: positional target %q must be a declared list option", name))
	}
	s.positional = name
	return s
}

func (s *Schema) PositionalName() string {
	return s.positional
}

func (s *Schema) Lookup(name string) (Option, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Option{}, false
	}
	return s.options[i], true
}

func (s *Schema) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Schema) Len() int {
	return len(s.options)
}

// Union merges schemas in order. An option present in several schemas keeps
// its first declaration and gains the scopes of the others; declaring it with
// a different kind panics.
func Union(schemas ...*Schema) *Schema {
	u := NewSchema(0)
	for _, s := range schemas {
		for _, o := range s.options {
			if i, ok := u.byName[o.Name]; ok {
				if u.options[i].Kind != o.Kind {
					panic(fmt.Sprintf("options: %q declared as %s and %s", o.Name, u.options[i].Kind, o.Kind))
				}
				u.options[i].Scope |= o.Scope
				continue
			}
			u.Add(o)
		}
		if u.positional == "" {
			u.positional = s.positional
		}
	}
	return u
}

// FlagSet returns a fresh flag set holding every option of s in declaration
// order.
func (s *Schema) FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	s.AddTo(fs)
	return fs
}

// AddTo registers the options of s on an existing flag set.
func (s *Schema) AddTo(fs *pflag.FlagSet) {
	for _, o := range s.options {
		switch o.Kind {
		case KindBool:
			def, _ := o.Default.(bool)
			fs.BoolP(o.Name, o.Short, def, o.Help)
		case KindString:
			def, _ := o.Default.(string)
			fs.StringP(o.Name, o.Short, def, o.Help)
		case KindInt:
			def, _ := o.Default.(int)
			fs.IntP(o.Name, o.Short, def, o.Help)
		case KindStringList:
			def, _ := o.Default.([]string)
			fs.StringArrayP(o.Name, o.Short, def, o.Help)
		}
	}
}
