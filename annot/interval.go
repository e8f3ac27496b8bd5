// Package annot loads feature annotations into a uniform list of genomic
// intervals. Two source shapes are understood: BED-like tabular files and
// GTF/GFF feature files. Callers should not care which shape backed a given
// Loader; both yield the same zero-based, half-open intervals.
package annot

import "errors"

// ErrUnrecognizedFormat indicates that an annotation source matched neither
// the BED nor the GTF/GFF shape.
var ErrUnrecognizedFormat = errors.New("unrecognized annotation format")

// Strand is the annotated orientation of an interval.
type Strand byte

const (
	StrandNone Strand = iota
	StrandPlus
	StrandMinus
)

func (s Strand) String() string {
	switch s {
	case StrandPlus:
		return "+"
	case StrandMinus:
		return "-"
	}
	return "."
}

// ParseStrand maps the textual strand column onto a Strand. Anything other
// than "+" or "-" (".", empty, etc) is StrandNone.
func ParseStrand(field string) Strand {
	switch field {
	case "+":
		return StrandPlus
	case "-":
		return StrandMinus
	}
	return StrandNone
}

// Interval is one annotated genomic region with zero-based, half-open
// coordinates. Intervals are value types and are never mutated after loading.
type Interval struct {
	Chrom  string
	Start  int
	End    int
	Strand Strand
}

// Loader produces the ordered interval list for one annotation source. The
// order is stable across repeated Load calls on the same source; downstream
// consumers rely on it for column indexing.
type Loader interface {
	Load() ([]Interval, error)
}
