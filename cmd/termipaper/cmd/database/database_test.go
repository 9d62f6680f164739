package database

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/profile"
	"github.com/agentstation/termipaper/pkg/catalog"
)

func newApp(t *testing.T, fs afero.Fs, opts ...termipaper.Option) *appcontext.Mock {
	t.Helper()
	base := []termipaper.Option{
		termipaper.WithFs(fs),
		termipaper.WithDefaultDir("/data/papers"),
		termipaper.WithProfilePath("/cfg/config.yml"),
		termipaper.WithClock(func() time.Time { return time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) }),
	}
	tp, err := termipaper.New(append(base, opts...)...)
	require.NoError(t, err)
	return appcontext.NewMock(tp)
}

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "termipaper", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: "database", Title: "Catalog Commands:"})
	root.AddCommand(NewInitCommand(app), NewActivateCommand(app), NewInfoCommand(app))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func loadProfile(t *testing.T, fs afero.Fs) *profile.Profile {
	t.Helper()
	p, err := profile.NewStore("/cfg/config.yml", profile.WithFs(fs)).Load()
	require.NoError(t, err)
	return p
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, newApp(t, fs), "init", "/lib")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized catalog in /lib")

	ok, err := afero.Exists(fs, "/lib/index.termipaper.yml")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-05-06", loadProfile(t, fs).Databases["/lib"].DateCreated)

	out, err = run(t, newApp(t, fs), "init")
	require.NoError(t, err)
	assert.Contains(t, out, "/data/papers")
}

func TestActivate(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := run(t, newApp(t, fs), "activate", "/lib")
	require.NoError(t, err)
	assert.Equal(t, "/lib", loadProfile(t, fs).Activated)

	// a fresh session now resolves the activated catalog
	app := newApp(t, fs)
	cat, err := app.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "/lib", cat.Dir())

	out, err := run(t, newApp(t, fs), "activate")
	require.NoError(t, err)
	assert.Contains(t, out, "Activated /data/papers")
	assert.Equal(t, "/data/papers", loadProfile(t, fs).Activated)
}

func TestInfo(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := run(t, newApp(t, fs), "activate", "/lib")
	require.NoError(t, err)

	app := newApp(t, fs)
	tp, err := app.Termipaper()
	require.NoError(t, err)
	require.NoError(t, tp.SetOwner(profile.Owner{Name: "Ada", Email: "ada@example.com"}))
	cat, err := app.Catalog()
	require.NoError(t, err)
	require.NoError(t, cat.Add("a1", catalog.Entry{Title: catalog.Ptr("X")}, false))

	out, err := run(t, app, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "/lib/index.termipaper.yml")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "activated")

	app.OutputFormatFunc = func() string { return "json" }
	out, err = run(t, app, "info")
	require.NoError(t, err)

	var info Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 1, info.Catalog.Entries)
	assert.Equal(t, termipaper.SourceActivated, info.Source)
	assert.Equal(t, "2024-05-06", info.Created)
	assert.Equal(t, "ada@example.com", info.Owner.Email)
	assert.Equal(t, []string{"/lib"}, info.Databases)
}
