package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestWeaklyCanonicalRelativeAndMissing(t *testing.T) {
	tmp := canonicalTempDir(t)
	require.Equal(t, filepath.Join(tmp, "a", "b.mf4"), WeaklyCanonical(tmp, "a/./x/../b.mf4"))
	require.Equal(t, filepath.Join(tmp, "missing", "deeper"), WeaklyCanonical(tmp, "missing/deeper"))
}

func TestWeaklyCanonicalResolvesExistingSymlinks(t *testing.T) {
	tmp := canonicalTempDir(t)
	target := filepath.Join(tmp, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.Equal(t, filepath.Join(target, "not-yet.mf4"), WeaklyCanonical(tmp, "link/not-yet.mf4"))
}

func TestWeaklyCanonicalAbsoluteInput(t *testing.T) {
	tmp := canonicalTempDir(t)
	abs := filepath.Join(tmp, "x.mf4")
	require.Equal(t, abs, WeaklyCanonical("/somewhere/else", abs))
}

func TestFilesWithExtensionNonRecursiveCaseSensitive(t *testing.T) {
	tmp := canonicalTempDir(t)
	for _, name := range []string{"x.mf4", "y.txt", "z.mf4", "upper.MF4"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub.mf4"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "sub.mf4", "deep.mf4"), []byte("x"), 0o644))

	files, err := FilesWithExtension(tmp, ".mf4")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(tmp, "x.mf4"), filepath.Join(tmp, "z.mf4")}, files)
}

func TestFilesWithExtensionSortedByName(t *testing.T) {
	tmp := canonicalTempDir(t)
	for _, name := range []string{"c.mf4", "a.mf4", "b.mf4"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0o644))
	}

	files, err := FilesWithExtension(tmp, ".mf4")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(tmp, "a.mf4"),
		filepath.Join(tmp, "b.mf4"),
		filepath.Join(tmp, "c.mf4"),
	}, files)
}

func TestFilesWithExtensionMissingDir(t *testing.T) {
	_, err := FilesWithExtension(filepath.Join(t.TempDir(), "nope"), ".mf4")
	require.Error(t, err)
}

func TestExistsAndIsDir(t *testing.T) {
	tmp := canonicalTempDir(t)
	f := filepath.Join(tmp, "f")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	require.True(t, Exists(f))
	require.False(t, IsDir(f))
	require.True(t, IsDir(tmp))
	require.False(t, Exists(filepath.Join(tmp, "g")))
}
