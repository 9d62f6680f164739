package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGLocations(t *testing.T) {
	data := t.TempDir()
	config := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("XDG_CONFIG_HOME", config)
	Reload()
	t.Cleanup(Reload)

	assert.Equal(t, filepath.Join(data, "termipaper"), DataDir())
	assert.Equal(t, filepath.Join(data, "termipaper", "papers"), DefaultCatalogDir())
	assert.Equal(t, filepath.Join(config, "termipaper"), ConfigDir())
	assert.Equal(t, filepath.Join(config, "termipaper", "config.yml"), ProfilePath())
}

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/papers", filepath.Join(home, "papers")},
		{"/abs/../abs/dir/", "/abs/dir"},
		{"rel", filepath.Join(wd, "rel")},
		{"~other", filepath.Join(wd, "~other")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = Expand("")
	assert.Error(t, err)
}
