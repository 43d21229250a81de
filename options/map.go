package options

import (
	"sort"

	"github.com/spf13/pflag"
)

// Source tells where a value came from. A higher source overrides a lower one.
type Source int

const (
	SourceDefault Source = iota
	SourceConfigFile
	SourceCommandLine
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceConfigFile:
		return "config file"
	case SourceCommandLine:
		return "command line"
	default:
		return "unknown"
	}
}

type entry struct {
	value  any
	source Source
}

// Map holds parsed option values by long name.
type Map struct {
	entries map[string]entry
}

func NewMap() *Map {
	return &Map{entries: make(map[string]entry)}
}

// Set stores value unless name already holds a value from a higher source.
// It reports whether the value was stored.
func (m *Map) Set(name string, value any, src Source) bool {
	if cur, ok := m.entries[name]; ok && cur.source > src {
		return false
	}
	m.entries[name] = entry{value: value, source: src}
	return true
}

// Store copies the values fs holds for the options of s. Options the flag
// set saw are stored under src, the others fall back to their default when
// they declare one.
func (m *Map) Store(s *Schema, fs *pflag.FlagSet, src Source) error {
	for _, o := range s.options {
		f := fs.Lookup(o.Name)
		if f == nil {
			continue
		}
		if !f.Changed {
			if o.Default != nil {
				m.Set(o.Name, o.Default, SourceDefault)
			}
			continue
		}
		v, err := flagValue(fs, o)
		if err != nil {
			return err
		}
		m.Set(o.Name, v, src)
	}
	return nil
}

func flagValue(fs *pflag.FlagSet, o Option) (any, error) {
	switch o.Kind {
	case KindBool:
		return fs.GetBool(o.Name)
	case KindInt:
		return fs.GetInt(o.Name)
	case KindStringList:
		v, err := fs.GetStringArray(o.Name)
		if err != nil {
			return nil, err
		}
		return append([]string(nil), v...), nil
	default:
		return fs.GetString(o.Name)
	}
}

func (m *Map) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

func (m *Map) Source(name string) (Source, bool) {
	e, ok := m.entries[name]
	return e.source, ok
}

func (m *Map) Value(name string) any {
	return m.entries[name].value
}

func (m *Map) Bool(name string) bool {
	v, _ := m.entries[name].value.(bool)
	return v
}

func (m *Map) Int(name string) int {
	v, _ := m.entries[name].value.(int)
	return v
}

func (m *Map) String(name string) string {
	v, _ := m.entries[name].value.(string)
	return v
}

func (m *Map) Strings(name string) []string {
	v, _ := m.entries[name].value.([]string)
	return append([]string(nil), v...)
}

func (m *Map) Names() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
