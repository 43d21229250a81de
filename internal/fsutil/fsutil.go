// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// WeaklyCanonical makes p absolute against base (the process working
// directory when base is empty), cleans it and resolves symlinks in the
// longest prefix that exists. Missing trailing components are kept as given.
func WeaklyCanonical(base, p string) string {
	if !filepath.IsAbs(p) {
		if base == "" {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
		} else {
			p = filepath.Join(base, p)
		}
	}
	p = filepath.Clean(p)

	existing := p
	var rest []string
	for {
		if resolved, err := filepath.EvalSymlinks(existing); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return p
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}

func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func IsDir(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

// FilesWithExtension lists the regular files directly inside dir whose
// extension is exactly ext, sorted by name. Symlinks to regular files
// count as regular files.
func FilesWithExtension(dir, ext string) ([]string, error) {
	if ext == "" {
		panic("extension must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		full := filepath.Join(dir, e.Name())
		st, err := os.Stat(full)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		files = append(files, full)
	}
	return files, nil
}
