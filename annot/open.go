package annot

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/genomelab/trackcorr/sniff"
)

// Open peeks at the first data line of path and returns the Loader matching
// its shape. A source that looks like neither BED nor GTF/GFF fails with
// ErrUnrecognizedFormat before any full parse is attempted.
func Open(path string) (Loader, error) {
	r, err := sniff.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if skippableLine(text) {
			continue
		}

		if looksLikeGTF(text) {
			return NewGTF(path), nil
		}
		if looksLikeBED(text) {
			return NewBED(path), nil
		}
		return nil, fmt.Errorf("%s: %w", path, ErrUnrecognizedFormat)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	// A source with no data lines at all has no recognizable shape.
	return nil, fmt.Errorf("%s: %w", path, ErrUnrecognizedFormat)
}

func looksLikeGTF(text string) bool {
	cols := strings.Split(text, "\t")
	if len(cols) < 8 {
		return false
	}
	if _, err := strconv.Atoi(cols[3]); err != nil {
		return false
	}
	if _, err := strconv.Atoi(cols[4]); err != nil {
		return false
	}
	// BED rows with many columns have integers in 2 and 3 instead.
	if _, err := strconv.Atoi(cols[1]); err == nil {
		if _, err := strconv.Atoi(cols[2]); err == nil {
			return false
		}
	}
	return true
}

func looksLikeBED(text string) bool {
	cols := strings.Fields(text)
	if len(cols) < 3 {
		return false
	}
	if _, err := strconv.Atoi(cols[1]); err != nil {
		return false
	}
	if _, err := strconv.Atoi(cols[2]); err != nil {
		return false
	}
	return true
}
