package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type ParseOptions struct {
	// Strict rejects any symbol other than '@' and '.'.
	Strict bool
}

// Parse reads a grid from r, one row per line.
func Parse(r io.Reader, opts ParseOptions) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Cell, len(lines))
	for r, line := range lines {
		symbols := []rune(line)
		row := make([]Cell, len(symbols))
		for c, ch := range symbols {
			switch {
			case ch == '@':
				row[c] = Active
			case ch == '.' || !opts.Strict:
				row[c] = Empty
			default:
				return nil, &MalformedGridError{Row: r, Col: c, Reason: fmt.Sprintf("unexpected symbol %q", ch)}
			}
		}
		rows[r] = row
	}
	return FromRows(rows)
}

func ParseString(s string, opts ParseOptions) (*Grid, error) {
	return Parse(strings.NewReader(s), opts)
}

func ParseFile(path string, opts ParseOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

func lengthReason(got, want int) string {
	return fmt.Sprintf("row has %d cells, expected %d", got, want)
}
