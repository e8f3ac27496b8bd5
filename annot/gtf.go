package annot

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/genomelab/trackcorr/sniff"
)

// GTF loads a GTF/GFF feature annotation: nine tab-separated columns with
// one-based inclusive coordinates and the strand in column seven. Start is
// shifted to zero-based; the inclusive end is already the half-open end.
type GTF struct {
	path string
}

func NewGTF(path string) *GTF {
	return &GTF{path: path}
}

func (g *GTF) Load() ([]Interval, error) {
	r, err := sniff.Open(g.path)
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

		// The attribute column contains spaces, so GTF must split on tabs
		// only.
		cols := strings.Split(text, "\t")
		if len(cols) < 8 {
			return nil, fmt.Errorf("%s line %d: %w", g.path, line, ErrUnrecognizedFormat)
		}

		start, err := strconv.Atoi(cols[3])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", g.path, line, ErrUnrecognizedFormat)
		}
		end, err := strconv.Atoi(cols[4])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", g.path, line, ErrUnrecognizedFormat)
		}

		out = append(out, Interval{
			Chrom:  cols[0],
			Start:  start - 1,
			End:    end,
			Strand: ParseStrand(cols[6]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
