// ABOUTME: Reads candidate lines from an io.Reader, one candidate per line
// ABOUTME: Strips trailing newlines only; keeps empty lines and duplicates verbatim

package lines

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineSize bounds a single candidate line at 1 MiB.
const maxLineSize = 1 << 20

// Read consumes r to EOF and returns one candidate per line. Lines keep
// their bytes untouched apart from the trailing newline (and a preceding
// carriage return, if any). A read error is fatal to the whole batch.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}
