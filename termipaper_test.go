package termipaper

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper/internal/profile"
	"github.com/agentstation/termipaper/pkg/catalog"
	"github.com/agentstation/termipaper/pkg/logging"
)

var fixedNow = time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

func newTest(t *testing.T, fs afero.Fs, opts ...Option) Termipaper {
	t.Helper()
	base := []Option{
		WithFs(fs),
		WithDefaultDir("/data/papers"),
		WithProfilePath("/cfg/config.yml"),
		WithClock(func() time.Time { return fixedNow }),
	}
	tp, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return tp
}

func TestDirPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()

	dir, source, err := newTest(t, fs).Dir()
	require.NoError(t, err)
	assert.Equal(t, "/data/papers", dir)
	assert.Equal(t, SourceDefault, source)

	_, err = newTest(t, fs).Activate("/work/lib")
	require.NoError(t, err)

	dir, source, err = newTest(t, fs).Dir()
	require.NoError(t, err)
	assert.Equal(t, "/work/lib", dir)
	assert.Equal(t, SourceActivated, source)

	dir, source, err = newTest(t, fs, WithDir("/explicit")).Dir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit", dir)
	assert.Equal(t, SourceExplicit, source)
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()
	tp := newTest(t, fs)

	dir, err := tp.Init("/lib")
	require.NoError(t, err)
	assert.Equal(t, "/lib", dir)

	ok, err := afero.Exists(fs, "/lib/index.termipaper.yml")
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := tp.Profile()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", p.Databases["/lib"].DateCreated)
	assert.Empty(t, p.Activated)

	t.Run("keeps existing index", func(t *testing.T) {
		cat, err := tp.Catalog()
		require.NoError(t, err)
		assert.Equal(t, "/data/papers", cat.Dir())

		other, err := catalog.Open("/lib", catalog.WithFs(fs))
		require.NoError(t, err)
		require.NoError(t, other.Add("a1", catalog.Entry{Title: catalog.Ptr("X")}, false))

		_, err = tp.Init("/lib")
		require.NoError(t, err)
		reopened, err := catalog.Open("/lib", catalog.WithFs(fs))
		require.NoError(t, err)
		assert.True(t, reopened.Root().Has("a1"))
	})

	t.Run("defaults to the resolved directory", func(t *testing.T) {
		dir, err := newTest(t, fs, WithDir("/chosen")).Init("")
		require.NoError(t, err)
		assert.Equal(t, "/chosen", dir)
	})
}

func TestActivate(t *testing.T) {
	fs := afero.NewMemMapFs()
	tp := newTest(t, fs)

	cat, err := tp.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "/data/papers", cat.Dir())

	dir, err := tp.Activate("/elsewhere")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", dir)

	cat, err = tp.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cat.Dir())

	dir, err = tp.Activate("")
	require.NoError(t, err)
	assert.Equal(t, "/data/papers", dir)

	p, err := tp.Profile()
	require.NoError(t, err)
	assert.Equal(t, "/data/papers", p.Activated)
	assert.Equal(t, []string{"/data/papers", "/elsewhere"}, p.Dirs())
}

func TestMalformedProfile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.yml", []byte("owner: {name: [\n"), 0o644))
	tl := logging.NewTestLogger(t)
	tp := newTest(t, fs, WithLogger(tl.Logger))

	p, err := tp.Profile()
	require.NoError(t, err)
	assert.Empty(t, p.Databases)
	tl.AssertContains(t, "ignoring malformed profile")

	dir, source, err := tp.Dir()
	require.NoError(t, err)
	assert.Equal(t, "/data/papers", dir)
	assert.Equal(t, SourceDefault, source)

	// the next write replaces the broken file
	require.NoError(t, tp.SetOwner(profile.Owner{Name: "Ada"}))
	p, err = tp.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Owner.Name)
}

func TestSetOwner(t *testing.T) {
	tp := newTest(t, afero.NewMemMapFs())
	assert.Error(t, tp.SetOwner(profile.Owner{}))
	require.NoError(t, tp.SetOwner(profile.Owner{Name: "Grace", Email: "grace@example.com"}))

	p, err := tp.Profile()
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", p.Owner.Email)
}
