package track

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// wiggle declaration state: either fixedStep (positions implied by start and
// step) or variableStep (positions given per line). Wiggle coordinates are
// one-based; they are shifted to zero-based half-open as runs are recorded.
type wigDecl struct {
	variable bool
	chrom    string
	start    int
	step     int
	span     int
}

// parseWiggle reads a wiggle body, honoring fixedStep and variableStep
// sections with optional span.
func parseWiggle(name string, r io.Reader) (*runTrack, error) {
	t := newRunTrack(name)

	var decl *wigDecl
	var fixedIdx int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if skippableLine(text) {
			continue
		}

		if strings.HasPrefix(text, "fixedStep") || strings.HasPrefix(text, "variableStep") {
			d, err := parseWigDecl(text)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", name, line, err)
			}
			decl = d
			fixedIdx = 0
			continue
		}

		if decl == nil {
			return nil, fmt.Errorf("%s line %d: wiggle data before any step declaration", name, line)
		}

		cols := strings.Fields(text)
		if decl.variable {
			if len(cols) < 2 {
				return nil, fmt.Errorf("%s line %d: variableStep rows need position and value", name, line)
			}
			pos, err := strconv.Atoi(cols[0])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
			}
			value, err := strconv.ParseFloat(cols[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
			}
			t.add(decl.chrom, pos-1, pos-1+decl.span, value)
		} else {
			value, err := strconv.ParseFloat(cols[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", name, line, pfx.Err(err))
			}
			pos := decl.start + fixedIdx*decl.step
			t.add(decl.chrom, pos-1, pos-1+decl.span, value)
			fixedIdx++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	t.finish()
	return t, nil
}

func parseWigDecl(text string) (*wigDecl, error) {
	fields := strings.Fields(text)
	d := &wigDecl{variable: fields[0] == "variableStep", span: 1, step: 1}

	for _, field := range fields[1:] {
		key, val, found := strings.Cut(field, "=")
		if !found {
			return nil, fmt.Errorf("malformed wiggle attribute %q", field)
		}
		switch key {
		case "chrom":
			d.chrom = val
		case "start", "step", "span":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, pfx.Err(err)
			}
			switch key {
			case "start":
				d.start = n
			case "step":
				d.step = n
			case "span":
				d.span = n
			}
		}
	}

	if d.chrom == "" {
		return nil, fmt.Errorf("wiggle declaration %q is missing chrom", text)
	}
	if !d.variable && d.start == 0 {
		return nil, fmt.Errorf("fixedStep declaration %q is missing start", text)
	}
	return d, nil
}
