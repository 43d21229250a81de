package input

import (
	"errors"
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

func TestScanDirectoryOnlyTopLevelMF4(t *testing.T) {
	tmp := canonicalTempDir(t)
	in := filepath.Join(tmp, "in")
	require.NoError(t, os.MkdirAll(filepath.Join(in, "sub"), 0o755))
	for _, name := range []string{"x.mf4", "y.txt", "z.mf4", filepath.Join("sub", "w.mf4")} {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), []byte("x"), 0o644))
	}

	dir, files, err := ScanDirectory("in", tmp)
	require.NoError(t, err)
	require.Equal(t, in, dir)
	require.Equal(t, []string{filepath.Join(in, "x.mf4"), filepath.Join(in, "z.mf4")}, files)
}

func TestScanDirectoryMissingOrNotDir(t *testing.T) {
	tmp := canonicalTempDir(t)
	dir, files, err := ScanDirectory("nope", tmp)
	require.True(t, errors.Is(err, ErrNotExist))
	require.Equal(t, filepath.Join(tmp, "nope"), dir)
	require.Empty(t, files)

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "plain.mf4"), []byte("x"), 0o644))
	_, _, err = ScanDirectory("plain.mf4", tmp)
	require.True(t, errors.Is(err, ErrNotDir))
}

func TestResolveMissingInput(t *testing.T) {
	tmp := canonicalTempDir(t)
	item, err := Resolve("missing.mf4", tmp)
	require.ErrorIs(t, err, ErrInputAbsent)
	require.Equal(t, filepath.Join(tmp, "missing.mf4"), item.SourcePath)
	require.Equal(t, "missing.mf4", item.Raw)
}

func TestResolveExistingInput(t *testing.T) {
	tmp := canonicalTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.mf4"), []byte("x"), 0o644))
	item, err := Resolve("./a.mf4", tmp)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "a.mf4"), item.SourcePath)
}
