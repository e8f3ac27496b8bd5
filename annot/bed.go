package annot

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/genomelab/trackcorr/sniff"
)

// BED loads a BED-like tabular annotation: at least chrom, start, end, with
// the strand in the optional sixth column. Coordinates are already zero-based
// and half-open in this shape, so they pass through unchanged.
type BED struct {
	path string
}

func NewBED(path string) *BED {
	return &BED{path: path}
}

func (b *BED) Load() ([]Interval, error) {
	r, err := sniff.Open(b.path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	var out []Interval

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if skippableLine(text) {
			continue
		}

		cols := strings.Fields(text)
		if len(cols) < 3 {
			return nil, fmt.Errorf("%s line %d: %w", b.path, line, ErrUnrecognizedFormat)
		}

		start, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", b.path, line, ErrUnrecognizedFormat)
		}
		end, err := strconv.Atoi(cols[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", b.path, line, ErrUnrecognizedFormat)
		}

		iv := Interval{Chrom: cols[0], Start: start, End: end}
		if len(cols) > 5 {
			iv.Strand = ParseStrand(cols[5])
		}
		out = append(out, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// skippableLine reports whether a line carries no interval: blank lines,
// comments, and BED track/browser declarations.
func skippableLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "track") ||
		strings.HasPrefix(trimmed, "browser")
}
