package domain

import (
	"bytes"
)

// TraceFunc observes every processed line together with the stack after it.
type TraceFunc func(lineNo int, line string, emitted bool, stack []Scope)

// FilterStats summarizes a single filtering pass.
type FilterStats struct {
	LinesIn   int
	LinesKept int
}

// SplitLines splits content into lines, keeping each line terminator so that
// joining the result reproduces the input exactly.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := make([]string, 0, bytes.Count(content, []byte{'\n'})+1)

	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))

			break
		}

		lines = append(lines, string(content[:i+1]))
		content = content[i+1:]
	}

	return lines
}

// FilterLines runs a fresh Engine over lines and returns the emitted ones.
func FilterLines(symbols *Symbols, lines []string) ([]string, error) {
	return filterLines(symbols, lines, nil)
}

// FilterContent filters a whole file. A partial result is never returned:
// on error the output is nil.
func FilterContent(symbols *Symbols, content []byte, trace TraceFunc) ([]byte, FilterStats, error) {
	lines := SplitLines(content)
	stats := FilterStats{LinesIn: len(lines)}

	kept, err := filterLines(symbols, lines, trace)
	if err != nil {
		return nil, stats, err
	}

	stats.LinesKept = len(kept)

	var out bytes.Buffer

	out.Grow(len(content))

	for _, line := range kept {
		out.WriteString(line)
	}

	return out.Bytes(), stats, nil
}

func filterLines(symbols *Symbols, lines []string, trace TraceFunc) ([]string, error) {
	engine := NewEngine(symbols)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		emit, err := engine.Process(line)
		if err != nil {
			return nil, err
		}

		if trace != nil {
			trace(engine.Line(), line, emit, engine.Stack())
		}

		if emit {
			out = append(out, line)
		}
	}

	if err := engine.Finish(); err != nil {
		return nil, err
	}

	return out, nil
}
