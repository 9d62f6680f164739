package papers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/pkg/catalog"
	"github.com/agentstation/termipaper/pkg/errors"
)

const pdf = "%PDF-1.4\n%test\n"

func newApp(t *testing.T) (*appcontext.Mock, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/x.pdf", []byte(pdf), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/y.djvu", []byte("AT&TFORM"), 0o644))

	tp, err := termipaper.New(
		termipaper.WithFs(fs),
		termipaper.WithDir("/lib"),
		termipaper.WithProfilePath("/cfg/config.yml"),
	)
	require.NoError(t, err)
	return appcontext.NewMock(tp), fs
}

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "termipaper", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: "papers", Title: "Paper Commands:"})
	root.AddCommand(
		NewAddCommand(app),
		NewEditCommand(app),
		NewRemoveCommand(app),
		NewListCommand(app),
		NewShowCommand(app),
		NewOpenCommand(app),
	)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func showJSON(t *testing.T, app *appcontext.Mock, args ...string) map[string]any {
	t.Helper()
	app.OutputFormatFunc = func() string { return "json" }
	defer func() { app.OutputFormatFunc = nil }()

	out, err := run(t, app, append([]string{"show"}, args...)...)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestAdd(t *testing.T) {
	app, fs := newApp(t)

	out, err := run(t, app, "add", "a1", "-f", "/src/x.pdf", "-t", "X", "-a", "Ada", "-a", "Grace", "-y", "2020", "--doi", "10.1/x")
	require.NoError(t, err)
	assert.Contains(t, out, "Added a1")

	data, err := afero.ReadFile(fs, "/lib/a1.pdf")
	require.NoError(t, err)
	assert.Equal(t, pdf, string(data))

	got := showJSON(t, app, "a1")
	assert.Equal(t, "X", got["title"])
	assert.Equal(t, []any{"Ada", "Grace"}, got["authors"])
	assert.EqualValues(t, 2020, got["year"])
	assert.Equal(t, "10.1/x", got["doi"])
	assert.Equal(t, "a1.pdf", got["file"])
	stored, ok := got["stored"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", stored["mime"])

	t.Run("duplicate", func(t *testing.T) {
		_, err := run(t, app, "add", "a1", "-t", "Other")
		require.Error(t, err)
		assert.True(t, catalog.IsDuplicate(err))
	})

	t.Run("force", func(t *testing.T) {
		_, err := run(t, app, "add", "a1", "-t", "Other", "--force")
		require.NoError(t, err)
		got := showJSON(t, app, "a1")
		assert.Equal(t, "Other", got["title"])
		assert.Nil(t, got["authors"])
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := run(t, app, "add", "a b")
		require.Error(t, err)
		assert.True(t, catalog.IsInvalidIdentifier(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, app, "add", "z9", "-f", "/src/none.pdf")
		require.Error(t, err)
		assert.True(t, catalog.IsSourceFileNotFound(err))
	})
}

func TestEdit(t *testing.T) {
	app, fs := newApp(t)
	_, err := run(t, app, "add", "a1", "-t", "X", "-a", "Ada", "-f", "/src/x.pdf")
	require.NoError(t, err)

	out, err := run(t, app, "edit", "a1", "--year", "1843")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated a1")

	got := showJSON(t, app, "a1")
	assert.Equal(t, "X", got["title"])
	assert.Equal(t, []any{"Ada"}, got["authors"])
	assert.EqualValues(t, 1843, got["year"])

	_, err = run(t, app, "edit", "a1", "-f", "/src/y.djvu")
	require.NoError(t, err)
	ok, err := afero.Exists(fs, "/lib/a1.djvu")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = run(t, app, "edit", "a1")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, app, "edit", "ghost", "-t", "Y")
	require.Error(t, err)
	assert.True(t, catalog.IsEntryNotFound(err))
}

func TestRemove(t *testing.T) {
	app, fs := newApp(t)
	_, err := run(t, app, "add", "a1", "-f", "/src/x.pdf")
	require.NoError(t, err)
	_, err = run(t, app, "add", "b2")
	require.NoError(t, err)

	out, err := run(t, app, "rm", "a1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed a1")
	ok, err := afero.Exists(fs, "/lib/a1.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = run(t, app, "remove", "a1")
	assert.True(t, catalog.IsEntryNotFound(err))

	t.Run("file already gone", func(t *testing.T) {
		_, err := run(t, app, "add", "c3", "-f", "/src/x.pdf")
		require.NoError(t, err)
		require.NoError(t, fs.Remove("/lib/c3.pdf"))

		out, err := run(t, app, "remove", "c3")
		require.Error(t, err)
		assert.True(t, errors.IsIO(err))
		assert.Contains(t, out, "could not be deleted")
	})
}

func TestList(t *testing.T) {
	app, _ := newApp(t)
	_, err := run(t, app, "add", "b2", "-t", "Second")
	require.NoError(t, err)
	_, err = run(t, app, "add", "a1", "-t", "First", "-f", "/src/x.pdf")
	require.NoError(t, err)

	out, err := run(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "a1.pdf")
	assert.Less(t, bytes.Index([]byte(out), []byte("a1")), bytes.Index([]byte(out), []byte("b2")))

	app.OutputFormatFunc = func() string { return "json" }
	out, err = run(t, app, "ls")
	require.NoError(t, err)
	var records []catalog.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "a1", records[0].ID)
	assert.Equal(t, "First", *records[0].Title)

	out, err = run(t, app, "list", "--with-file")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)

	out, err = run(t, app, "list", "-s", "second")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "b2", records[0].ID)

	out, err = run(t, app, "list", "--match", "a*")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)

	_, err = run(t, app, "list", "--match", "(a")
	assert.True(t, errors.IsValidationError(err))
}

func TestCategoryFlag(t *testing.T) {
	app, fs := newApp(t)
	cat, err := app.Catalog()
	require.NoError(t, err)
	_, err = cat.AddCategory("ml")
	require.NoError(t, err)
	_, err = cat.AddCategory("nlp", catalog.In("ml"))
	require.NoError(t, err)

	out, err := run(t, app, "add", "v17", "-f", "/src/x.pdf", "--category", "ml/nlp")
	require.NoError(t, err)
	assert.Contains(t, out, "Added ml/nlp/v17")
	ok, err := afero.Exists(fs, "/lib/ml/nlp/v17.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	out, err = run(t, app, "list", "-c", "ml/nlp/")
	require.NoError(t, err)
	assert.Contains(t, out, "v17")

	_, err = run(t, app, "show", "v17")
	assert.True(t, catalog.IsEntryNotFound(err))

	_, err = run(t, app, "list", "-c", "bio")
	assert.True(t, catalog.IsCategoryNotFound(err))
}

func TestOpen(t *testing.T) {
	app, _ := newApp(t)
	_, err := run(t, app, "add", "a1", "-f", "/src/x.pdf")
	require.NoError(t, err)
	_, err = run(t, app, "add", "b2")
	require.NoError(t, err)

	out, err := run(t, app, "open", "a1", "--print")
	require.NoError(t, err)
	assert.Equal(t, "/lib/a1.pdf\n", out)

	var launched string
	orig := launch
	launch = func(path string) error { launched = path; return nil }
	t.Cleanup(func() { launch = orig })

	_, err = run(t, app, "open", "a1")
	require.NoError(t, err)
	assert.Equal(t, "/lib/a1.pdf", launched)

	_, err = run(t, app, "open", "b2")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestCategoryPath(t *testing.T) {
	assert.Nil(t, CategoryPath(""))
	assert.Equal(t, []string{"a", "b"}, CategoryPath("/a//b/"))
}
