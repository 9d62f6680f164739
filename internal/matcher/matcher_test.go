package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		patternType PatternType
		pattern     string
		opts        []Options
		want        PatternType
		match       []string
		noMatch     []string
	}{
		{
			name:        "glob",
			patternType: Glob,
			pattern:     "smith*",
			want:        Glob,
			match:       []string{"smith2020", "smith"},
			noMatch:     []string{"jones2020", "Smith2020"},
		},
		{
			name:        "glob case insensitive",
			patternType: Glob,
			pattern:     "Smith20??",
			opts:        []Options{{CaseInsensitive: true}},
			want:        Glob,
			match:       []string{"smith2020", "SMITH2021"},
			noMatch:     []string{"smith20201"},
		},
		{
			name:        "regex",
			patternType: Regex,
			pattern:     `^[a-z]+19\d\d$`,
			want:        Regex,
			match:       []string{"turing1936"},
			noMatch:     []string{"smith2020"},
		},
		{
			name:        "auto detects regex",
			patternType: Auto,
			pattern:     `(turing|church)\d+`,
			want:        Regex,
			match:       []string{"church1936", "turing1936"},
			noMatch:     []string{"godel1931"},
		},
		{
			name:        "auto defaults to glob",
			patternType: Auto,
			pattern:     "*1936",
			want:        Glob,
			match:       []string{"church1936"},
			noMatch:     []string{"godel1931"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.patternType, tt.pattern, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Type())
			assert.Equal(t, tt.pattern, m.Pattern())
			for _, in := range tt.match {
				assert.True(t, m.Match(in), in)
			}
			for _, in := range tt.noMatch {
				assert.False(t, m.Match(in), in)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Glob, "[unclosed")
	assert.True(t, errors.IsValidationError(err))

	_, err = New(Regex, "(unclosed")
	assert.True(t, errors.IsValidationError(err))

	_, err = New(PatternType(42), "x")
	assert.True(t, errors.IsValidationError(err))
}

func TestMatchAll(t *testing.T) {
	m, err := New(Glob, "a*")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "ab"}, m.MatchAll("a1", "b2", "ab"))
	assert.Empty(t, m.MatchAll("b2"))
}

func TestPatternTypeString(t *testing.T) {
	assert.Equal(t, "glob", Glob.String())
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "unknown", PatternType(9).String())
}
