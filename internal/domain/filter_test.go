package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(nil))
	assert.Equal(t, []string{"a\n"}, SplitLines([]byte("a\n")))
	assert.Equal(t, []string{"a\r\n", "b"}, SplitLines([]byte("a\r\nb")))
	assert.Equal(t, []string{"\n", "\n"}, SplitLines([]byte("\n\n")))
}

func TestFilterContent(t *testing.T) {
	symbols := mustSymbols(t, []string{"WIN"}, []string{"DEBUG"})

	t.Run("preserves terminators of emitted lines", func(t *testing.T) {
		input := "head\r\n#ifdef WIN\r\nwin  \r\n#else\r\nposix\r\n#endif\r\n#ifdef DEBUG\r\nlog\r\n#endif\r\nend"

		out, stats, err := FilterContent(symbols, []byte(input), nil)
		require.NoError(t, err)
		assert.Equal(t, "head\r\nwin  \r\nend", string(out))
		assert.Equal(t, FilterStats{LinesIn: 10, LinesKept: 3}, stats)
	})

	t.Run("traces every line", func(t *testing.T) {
		type event struct {
			line  int
			emit  bool
			depth int
		}

		var events []event

		_, _, err := FilterContent(symbols, []byte("#ifdef WIN\nx\n#endif\n"),
			func(lineNo int, _ string, emitted bool, stack []Scope) {
				events = append(events, event{lineNo, emitted, len(stack) - 1})
			})
		require.NoError(t, err)

		assert.Equal(t, []event{{1, false, 1}, {2, true, 1}, {3, false, 0}}, events)
	})

	t.Run("malformed input discards partial output", func(t *testing.T) {
		out, stats, err := FilterContent(symbols, []byte("a\nb\n#ifdef WIN\n"), nil)
		require.ErrorIs(t, err, ErrMalformedInput)
		assert.Nil(t, out)
		assert.Equal(t, 3, stats.LinesIn)
	})

	t.Run("empty file", func(t *testing.T) {
		out, stats, err := FilterContent(symbols, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, FilterStats{}, stats)
	})
}
