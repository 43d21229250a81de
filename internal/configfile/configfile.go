// Package configfile finds and reads a tool's INI configuration file.
package configfile

import (
	"fmt"

	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"

	"github.com/jacricelli/mdf4-converters/internal/fsutil"
	"github.com/jacricelli/mdf4-converters/options"
)

// FileName is the config file name for program.
func FileName(program string) string {
	return program + "_config.ini"
}

// Find resolves the config file of program inside dir. The returned path is
// set even when the file does not exist.
func Find(dir, program string) (string, bool) {
	path := fsutil.WeaklyCanonical(dir, FileName(program))
	return path, fsutil.Exists(path)
}

// Load parses the INI file at path against s. Keys of the default section
// name options directly, keys of "[section]" name "section.key". Keys that
// name no option are ignored; a key repeated in a section adds one value per
// occurrence, which list options collect.
func Load(path string, s *options.Schema) (*pflag.FlagSet, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	fs := s.FlagSet(path)
	for _, sec := range cfg.Sections() {
		for _, key := range sec.Keys() {
			name := key.Name()
			if sec.Name() != ini.DefaultSection {
				name = sec.Name() + "." + name
			}
			if _, ok := s.Lookup(name); !ok {
				continue
			}
			for _, v := range key.ValueWithShadows() {
				if err := fs.Set(name, v); err != nil {
					return nil, fmt.Errorf("config file %s: option %q: %w", path, name, err)
				}
			}
		}
	}
	return fs, nil
}
