package owner

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/internal/appcontext"
)

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "termipaper", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: "database", Title: "Catalog Commands:"})
	root.AddCommand(NewCommand(app))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOwner(t *testing.T) {
	fs := afero.NewMemMapFs()
	tp, err := termipaper.New(termipaper.WithFs(fs), termipaper.WithDir("/lib"), termipaper.WithProfilePath("/cfg/config.yml"))
	require.NoError(t, err)
	app := appcontext.NewMock(tp)

	_, err = run(t, app, "owner", "set", "--email", "x@example.com")
	require.Error(t, err, "name is required")

	out, err := run(t, app, "owner", "set", "--name", "Ada Lovelace", "--affiliation", "Analytical Society")
	require.NoError(t, err)
	assert.Contains(t, out, "Owner set to Ada Lovelace")

	out, err = run(t, app, "owner")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Analytical Society")

	app.OutputFormatFunc = func() string { return "yaml" }
	out, err = run(t, app, "owner")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Ada Lovelace")
	assert.NotContains(t, out, "email")

	data, err := afero.ReadFile(fs, "/cfg/config.yml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada Lovelace")
}
