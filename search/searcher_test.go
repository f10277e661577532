package search

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/poiesic/rinkside/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingMonitor struct {
	query    string
	total    int
	matched  []int
	failed   []int
	finished []core.Record
}

func (m *recordingMonitor) Start(query string, total int) {
	m.query = query
	m.total = total
}

func (m *recordingMonitor) ProjectionFailed(index int, _ error) {
	m.failed = append(m.failed, index)
}

func (m *recordingMonitor) Matched(index int, _ core.Record) {
	m.matched = append(m.matched, index)
}

func (m *recordingMonitor) Finish(results []core.Record) {
	m.finished = results
}

func TestNewSearcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher()
		require.NoError(t, err)
		assert.NotNil(t, searcher)
		assert.NotNil(t, searcher.Normalizer())
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil normalizer", func(t *testing.T) {
		_, err := NewSearcher(WithNormalizer(nil))
		assert.Equal(t, ErrNormalizerRequired, err)
	})

	t.Run("unknown match mode", func(t *testing.T) {
		_, err := NewSearcher(WithMatchMode("fuzzy"))
		assert.True(t, errors.Is(err, ErrUnknownMatchMode))
	})

	t.Run("invalid word length", func(t *testing.T) {
		_, err := NewSearcher(WithMinWordLength(0))
		assert.Equal(t, ErrInvalidWordLength, err)
	})
}

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		input   string
		want    MatchMode
		wantErr bool
	}{
		{"", MatchSubstring, false},
		{"substring", MatchSubstring, false},
		{" Words ", MatchWords, false},
		{"regex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMatchMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMatchMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearcher_WordsMode(t *testing.T) {
	records := []core.Record{
		{"first": "Ivan", "last": "Petrov"},
		{"first": "Petr", "last": "Ivanov"},
		{"first": "Anna", "last": "Petrova"},
	}
	sel := ByFields("first", "last")

	substring, err := NewSearcher()
	require.NoError(t, err)
	words, err := NewSearcher(WithMatchMode(MatchWords))
	require.NoError(t, err)

	t.Run("substring needs the exact phrase", func(t *testing.T) {
		assert.Empty(t, substring.Filter(records, "petrov ivan", sel))
	})

	t.Run("words may appear in reverse order", func(t *testing.T) {
		got := words.Filter(records, "petrov ivan", sel)
		require.Len(t, got, 1)
		assert.Equal(t, "Ivan", got[0]["first"])
	})

	t.Run("words may be spread across fields", func(t *testing.T) {
		got := words.Filter(records, "ivan petr", sel)
		require.Len(t, got, 2)
		assert.Equal(t, "Ivan", got[0]["first"])
		assert.Equal(t, "Petr", got[1]["first"])
	})

	t.Run("every word must be found", func(t *testing.T) {
		got := words.Filter(records, "anna ivan", sel)
		assert.Empty(t, got)
	})

	t.Run("short words are dropped", func(t *testing.T) {
		got := words.Filter(records, "a petrova", sel)
		require.Len(t, got, 1)
		assert.Equal(t, "Anna", got[0]["first"])
	})

	t.Run("only short words matches everything", func(t *testing.T) {
		got := words.Filter(records, "a b", sel)
		assert.Len(t, got, 3)
	})

	t.Run("custom minimum word length", func(t *testing.T) {
		strict, err := NewSearcher(WithMatchMode(MatchWords), WithMinWordLength(5))
		require.NoError(t, err)
		got := strict.Filter(records, "ivan petrova", sel)
		require.Len(t, got, 1)
		assert.Equal(t, "Anna", got[0]["first"])
	})
}

func TestSearcher_WithNormalizer(t *testing.T) {
	records := []core.Record{
		{"name": "Артём Фёдоров"},
		{"name": "Пётр Иванов"},
	}

	plain, err := NewSearcher()
	require.NoError(t, err)
	assert.Empty(t, plain.Filter(records, "федоров", Default()))

	folding, err := NewSearcher(WithNormalizer(NewNormalizer(WithDiacriticFolding())))
	require.NoError(t, err)
	got := folding.Filter(records, "федоров", Default())
	require.Len(t, got, 1)
	assert.Equal(t, "Артём Фёдоров", got[0]["name"])
}

func TestSearcher_FilterWithMonitor(t *testing.T) {
	records := []core.Record{
		{"name": "Ann"},
		{"name": "Bob"},
		{"name": "Anton"},
	}
	projection := func(r core.Record) string {
		if r["name"] == "Bob" {
			panic("no projection for Bob")
		}
		return r["name"].(string)
	}

	searcher, err := NewSearcher(WithLogger(quietLogger()))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	got := searcher.FilterWithMonitor(records, "an", ByProjection(projection), monitor)

	assert.Equal(t, "an", monitor.query)
	assert.Equal(t, 3, monitor.total)
	assert.Equal(t, []int{0, 2}, monitor.matched)
	assert.Equal(t, []int{1}, monitor.failed)
	assert.Equal(t, got, monitor.finished)
	assert.Len(t, got, 2)
}

func TestSearcher_FilterWithMonitorEmptyQuery(t *testing.T) {
	records := []core.Record{{"name": "Ann"}, {"name": "Bob"}}

	searcher, err := NewSearcher()
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	got := searcher.FilterWithMonitor(records, "", Default(), monitor)

	assert.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, monitor.matched)
	assert.Empty(t, monitor.failed)
}

func TestSearcher_Mask(t *testing.T) {
	records := []core.Record{
		{"name": "Ann", "club": "Star"},
		{"name": "Bob", "club": "Moon"},
		{"name": "Cid", "club": "Star"},
	}

	searcher, err := NewSearcher()
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, true}, searcher.Mask(records, "star", ByFields("club")))
	assert.Equal(t, []bool{true, true, true}, searcher.Mask(records, "", ByFields("club")))
	assert.Empty(t, searcher.Mask(nil, "star", Default()))
}

func TestSearcher_VisibleIDs(t *testing.T) {
	ann := core.Record{"name": "Ann", "club": "Star"}
	bob := core.Record{"name": "Bob", "club": "Moon"}
	records := []core.Record{ann, bob, {"name": "Ann", "club": "Star"}}

	searcher, err := NewSearcher()
	require.NoError(t, err)

	visible := searcher.VisibleIDs(records, "star", Default())
	assert.Len(t, visible, 2)
	assert.True(t, visible[core.IDFromRecord(ann)])
	assert.False(t, visible[core.IDFromRecord(bob)])
}

func TestSelector_Kind(t *testing.T) {
	assert.Equal(t, SelectDefault, Selector{}.Kind())
	assert.Equal(t, SelectDefault, Default().Kind())
	assert.Equal(t, SelectFields, ByFields("a").Kind())
	assert.Equal(t, SelectProjection, ByProjection(func(core.Record) string { return "" }).Kind())
	assert.Equal(t, SelectDefault, ByProjection(nil).Kind())
	assert.Equal(t, "fields", SelectFields.String())

	paths := []string{"a", "b.c"}
	sel := ByFields(paths...)
	paths[0] = "changed"
	assert.Equal(t, []string{"a", "b.c"}, sel.Paths())
}
