package uucp

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestDirSpool(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "C.aaa"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	var s DirSpool

	ok, err := s.Exists(ctx, dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	files, err := s.List(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []FileInfo{{Name: "C.aaa", Size: 5}}, files)

	_, err = s.List(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)

	rc, err := s.Open(ctx, filepath.Join(dir, "C.aaa"))
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestList(t *testing.T) {
	root := makeSpool(t, "remote", map[string]string{
		"C.aaa": "12345",
		"D.aaa": "123",
		"D.bbb": "1",
	})
	// A data file sitting in the control directory is not a control file.
	require.NoError(t, os.WriteFile(filepath.Join(root, "remote", "C.", "D.zzz"), []byte("12"), 0o644))

	entries, stats, err := List(context.Background(), DirSpool{}, filepath.Join(root, "remote"))
	require.NoError(t, err)
	assert.Equal(t, Stats{NFiles: 4, NBytes: 11}, stats)
	require.Len(t, entries, 4)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Path] = e
	}
	ctl := byName[filepath.Join(root, "remote", "C.", "C.aaa")]
	assert.Equal(t, PrefixControl, ctl.Prefix)
	assert.Equal(t, "aaa", ctl.QID)

	stray := byName[filepath.Join(root, "remote", "C.", "D.zzz")]
	assert.Equal(t, "", stray.QID)

	data := byName[filepath.Join(root, "remote", "D.", "D.bbb")]
	assert.Equal(t, PrefixData, data.Prefix)
	assert.Equal(t, "bbb", data.QID)
}
