package parser

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines reads the whole file and returns one Line per physical line,
// in file order, with 1-based numbering. The trailing newline (and any
// carriage return before it) is stripped; the rest of the line is kept
// verbatim.
//
// A missing file is returned as an error satisfying
// errors.Is(err, os.ErrNotExist) so callers can report it as a fatal
// condition.
func ReadLines(path string) ([]Line, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	var lines []Line

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	num := 0
	for scanner.Scan() {
		num++
		lines = append(lines, Line{Num: num, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}
