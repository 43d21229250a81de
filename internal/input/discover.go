package input

import (
	"errors"
	"fmt"

	"github.com/jacricelli/mdf4-converters/internal/fsutil"
)

var (
	ErrNotExist    = errors.New("does not exist")
	ErrNotDir      = errors.New("is not a directory")
	ErrInputAbsent = errors.New("file does not exist")
)

// ScanDirectory makes dir absolute against cwd and lists the MDF files
// directly inside it. The returned path is the resolved directory, also on
// error.
func ScanDirectory(dir, cwd string) (string, []string, error) {
	abs := fsutil.WeaklyCanonical(cwd, dir)
	if !fsutil.Exists(abs) {
		return abs, nil, fmt.Errorf("input directory %s %w", abs, ErrNotExist)
	}
	if !fsutil.IsDir(abs) {
		return abs, nil, fmt.Errorf("input directory %s %w", abs, ErrNotDir)
	}
	files, err := fsutil.FilesWithExtension(abs, MDFExtension)
	if err != nil {
		return abs, nil, fmt.Errorf("scan input directory %s: %w", abs, err)
	}
	return abs, files, nil
}

// Resolve makes one user-supplied input absolute against cwd and checks it
// exists. The item is filled in even when the error is ErrInputAbsent.
func Resolve(raw, cwd string) (SourceItem, error) {
	item := SourceItem{Raw: raw, SourcePath: fsutil.WeaklyCanonical(cwd, raw)}
	if !fsutil.Exists(item.SourcePath) {
		return item, ErrInputAbsent
	}
	return item, nil
}
