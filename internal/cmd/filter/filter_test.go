package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/termipaper/internal/matcher"
	"github.com/agentstation/termipaper/pkg/catalog"
)

func records() []catalog.Record {
	return []catalog.Record{
		{ID: "lovelace1843", Entry: catalog.Entry{
			Title:   catalog.Ptr("Notes on the Analytical Engine"),
			Authors: []string{"Ada Lovelace"},
			Year:    catalog.Ptr[uint32](1843),
			File:    "lovelace1843.pdf",
		}},
		{ID: "turing1936", Entry: catalog.Entry{
			Title:   catalog.Ptr("On Computable Numbers"),
			Authors: []string{"Alan Turing"},
			Year:    catalog.Ptr[uint32](1936),
			DOI:     catalog.Ptr("10.1112/plms/s2-42.1.230"),
		}},
		{ID: "untitled"},
	}
}

func ids(rs []catalog.Record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestPaperFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter *PaperFilter
		want   []string
	}{
		{"nil keeps everything", nil, []string{"lovelace1843", "turing1936", "untitled"}},
		{"empty keeps everything", &PaperFilter{}, []string{"lovelace1843", "turing1936", "untitled"}},
		{"author substring", &PaperFilter{Author: "turing"}, []string{"turing1936"}},
		{"year", &PaperFilter{Year: 1843}, []string{"lovelace1843"}},
		{"with file", &PaperFilter{HasFile: true}, []string{"lovelace1843"}},
		{"search title", &PaperFilter{Search: "engine"}, []string{"lovelace1843"}},
		{"search doi", &PaperFilter{Search: "plms"}, []string{"turing1936"}},
		{"search id", &PaperFilter{Search: "untitled"}, []string{"untitled"}},
		{"combined", &PaperFilter{Author: "ada", Year: 1936}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(records())))
		})
	}
}

func TestPaperFilterID(t *testing.T) {
	m, err := matcher.New(matcher.Auto, "*1???")
	require.NoError(t, err)

	f := &PaperFilter{ID: m}
	assert.Equal(t, []string{"lovelace1843", "turing1936"}, ids(f.Apply(records())))

	f.Author = "alan"
	assert.Equal(t, []string{"turing1936"}, ids(f.Apply(records())))
}
