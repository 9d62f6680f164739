package atomicfile

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper/pkg/errors"
)

type noRenameFs struct{ afero.Fs }

func (noRenameFs) Rename(string, string) error { return errors.New("rename refused") }

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/d", 0o755))

	require.NoError(t, Write(fs, "/d/f.yml", "", []byte("one")))
	require.NoError(t, Write(fs, "/d/f.yml", ".f.*.tmp", []byte("two")))

	data, err := afero.ReadFile(fs, "/d/f.yml")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	infos, err := afero.ReadDir(fs, "/d")
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestWriteFromRenameFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/d", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/d/f.yml", []byte("old"), 0o644))

	err := WriteFrom(noRenameFs{mem}, "/d/f.yml", "", strings.NewReader("new"))
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))

	data, err := afero.ReadFile(mem, "/d/f.yml")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	infos, err := afero.ReadDir(mem, "/d")
	require.NoError(t, err)
	assert.Len(t, infos, 1, "temporary file is cleaned up")
}

func TestStage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/d", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/d/a.pdf", []byte("old"), 0o644))

	staged, err := Stage(fs, "/d/a.pdf", "", strings.NewReader("new"))
	require.NoError(t, err)
	assert.NotEqual(t, "/d/a.pdf", staged)
	assert.True(t, strings.HasPrefix(staged, "/d/.a.pdf."))

	data, err := afero.ReadFile(fs, "/d/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "target untouched until renamed")

	require.NoError(t, fs.Rename(staged, "/d/a.pdf"))
	data, err = afero.ReadFile(fs, "/d/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
