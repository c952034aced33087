package uucp

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSpool struct {
	mock.Mock
}

func (m *mockSpool) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *mockSpool) List(ctx context.Context, dir string) ([]FileInfo, error) {
	args := m.Called(ctx, dir)
	if files, ok := args.Get(0).([]FileInfo); ok {
		return files, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSpool) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

// makeSpool writes files under root/site/{C.,D.} and returns root.
func makeSpool(t *testing.T, site string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"C.", "D."} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, site, dir), 0o755))
	}
	for name, content := range files {
		p := filepath.Join(root, site, name[:2], name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

const (
	mailControl = "S D.x X.x uucp - D.x 0666 \"\" 0 rmail alice\n"
	newsControl = "S D.x X.x news - D.x 0644 \"\" 0 rnews\n"
)

func TestNewSite(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing root", func(t *testing.T) {
		site, err := NewSite(ctx, filepath.Join(t.TempDir(), "nope"), "remote", DirSpool{})
		require.NoError(t, err)
		assert.False(t, site.IsValid())
		assert.Equal(t, "remote", site.Name())

		require.NoError(t, site.Scan(ctx))
		assert.Equal(t, 0, site.Queue().Len())
		assert.Equal(t, Empty(), site.Queue().Check())
	})

	t.Run("Missing D. directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "remote", "C."), 0o755))
		site, err := NewSite(ctx, root, "remote", DirSpool{})
		require.NoError(t, err)
		assert.False(t, site.IsValid())
	})

	t.Run("Valid layout", func(t *testing.T) {
		root := makeSpool(t, "remote", nil)
		site, err := NewSite(ctx, root, "remote", DirSpool{})
		require.NoError(t, err)
		assert.True(t, site.IsValid())
		assert.Equal(t, filepath.Join(root, "remote"), site.Path())
	})

	t.Run("Existence check failure", func(t *testing.T) {
		s := new(mockSpool)
		s.On("Exists", mock.Anything, mock.Anything).Return(false, errors.New("permission denied"))

		site, err := NewSite(ctx, "/spool", "remote", s)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Nil(t, site)
	})
}

func TestSite_Scan(t *testing.T) {
	ctx := context.Background()
	root := makeSpool(t, "remote", map[string]string{
		"C.aaa": mailControl,
		"D.aaa": "From alice\n",
		"C.bbb": mailControl,
		"C.ccc": mailControl,
		"D.ccc": "From bob\n",
		"C.nnn": newsControl,
		"D.nnn": "#! rnews 12\n",
	})

	site, err := NewSite(ctx, root, "remote", DirSpool{})
	require.NoError(t, err)
	require.NoError(t, site.Scan(ctx))

	q := site.Queue()
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 2, q.Mails())
	assert.Equal(t, 1, q.News())
	assert.Equal(t, 1, q.Missing())
	assert.Equal(t, Damaged(1, 0), q.Check())

	stats := site.Stats()
	assert.Equal(t, 7, stats.NFiles)
	assert.Positive(t, stats.NBytes)
	assert.Equal(t, []string{"aaa", "bbb", "ccc", "nnn"}, site.LastReport().Added)

	t.Run("Refresh picks up removals", func(t *testing.T) {
		require.NoError(t, os.Remove(filepath.Join(root, "remote", "D.", "D.ccc")))
		require.NoError(t, site.Scan(ctx))

		assert.Equal(t, []string{"ccc"}, site.LastReport().Changed)
		assert.Equal(t, Damaged(2, 0), q.Check())
		assert.Equal(t, 1, q.Mails())
	})

	t.Run("Rescan rebuilds", func(t *testing.T) {
		require.NoError(t, q.Mark("aaa"))
		require.NoError(t, site.Rescan(ctx))
		e, ok := q.Entity("aaa")
		require.True(t, ok)
		assert.False(t, e.(*Mail).Marked)
	})

	t.Run("Foreign files are ignored", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "remote", "C.", "LCK..remote"), nil, 0o644))
		require.NoError(t, site.Scan(ctx))
		assert.Equal(t, 1, site.LastReport().Ignored)
		assert.Equal(t, 4, q.Len())
	})
}

func TestSite_ScanListingFailure(t *testing.T) {
	ctx := context.Background()
	s := new(mockSpool)
	s.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
	s.On("List", mock.Anything, filepath.Join("/spool", "remote", "C.")).Return([]FileInfo{{Name: "C.aaa", Size: 10}}, nil).Once()
	s.On("List", mock.Anything, filepath.Join("/spool", "remote", "D.")).Return([]FileInfo{{Name: "D.aaa", Size: 20}}, nil).Once()
	s.On("Open", mock.Anything, filepath.Join("/spool", "remote", "C.", "C.aaa")).Return(io.NopCloser(stringReader(mailControl)), nil)

	site, err := NewSite(ctx, "/spool", "remote", s)
	require.NoError(t, err)
	require.NoError(t, site.Scan(ctx))
	require.Equal(t, Clean(1), site.Queue().Check())

	s.On("List", mock.Anything, filepath.Join("/spool", "remote", "C.")).Return(nil, errors.New("input/output error"))

	err = site.Scan(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input/output error")
	assert.Equal(t, Clean(1), site.Queue().Check())
	assert.Equal(t, Stats{NFiles: 2, NBytes: 30}, site.Stats())
}

func TestSite_WithClassifier(t *testing.T) {
	ctx := context.Background()
	root := makeSpool(t, "remote", map[string]string{"C.aaa": "", "D.aaa": ""})

	site, err := NewSite(ctx, root, "remote", DirSpool{})
	require.NoError(t, err)
	site.WithClassifier(ClassifierFunc(func(context.Context, string) Transfer { return TransferNews }))
	require.NoError(t, site.Scan(ctx))
	assert.Equal(t, 1, site.Queue().News())
}

func TestSite_ScanCancelled(t *testing.T) {
	root := makeSpool(t, "remote", map[string]string{"C.aaa": mailControl, "D.aaa": "mail"})

	site, err := NewSite(context.Background(), root, "remote", DirSpool{})
	require.NoError(t, err)
	require.NoError(t, site.Scan(context.Background()))
	stats, report := site.Stats(), site.LastReport()

	for _, name := range []string{"C.bbb", "D.bbb"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "remote", name[:2], name), []byte(mailControl), 0o644))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	site.WithClassifier(ClassifierFunc(func(context.Context, string) Transfer {
		cancel()
		return TransferUnknown
	}))

	err = site.Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Clean(1), site.Queue().Check())
	assert.Equal(t, 0, site.Queue().Invalid())
	assert.Equal(t, stats, site.Stats())
	assert.Equal(t, report, site.LastReport())

	site.WithClassifier(NewControlClassifier(DirSpool{}))
	require.NoError(t, site.Scan(context.Background()))
	assert.Equal(t, Clean(2), site.Queue().Check())
	assert.Equal(t, []string{"bbb"}, site.LastReport().Added)
}
