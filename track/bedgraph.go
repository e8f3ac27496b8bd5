package track

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// parseBedGraph reads a bedGraph body: four whitespace-separated columns of
// chrom, start, end, value with zero-based half-open coordinates.
func parseBedGraph(name string, r io.Reader) (*runTrack, error) {
	t := newRunTrack(name)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if skippableLine(text) {
			continue
		}

		cols := strings.Fields(text)
		if len(cols) < 4 {
			return nil, fmt.Errorf("%s line %d: expected 4 bedGraph columns, got %d", name, line, len(cols))
		}

		start, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
		}
		end, err := strconv.Atoi(cols[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
		}
		value, err := strconv.ParseFloat(cols[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
		}

		t.add(cols[0], start, end, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	t.finish()
	return t, nil
}

func skippableLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "track") ||
		strings.HasPrefix(trimmed, "browser")
}
