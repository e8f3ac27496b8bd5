// Package track reads continuous genomic signal tracks and answers
// interval-mean queries against them. Two textual shapes are supported,
// bedGraph and wiggle; both are loaded eagerly into sorted per-chromosome
// runs so that queries are cheap and the source file handle is released as
// soon as loading finishes.
package track

import (
	"math"
	"sort"
)

// Track is a continuous signal source queryable by chromosome interval.
type Track interface {
	// Name identifies the track for labeling and error messages.
	Name() string

	// QueryMean returns the coverage-weighted mean of the track's values
	// strictly inside the zero-based, half-open interval [start, end). Where
	// the track has no data at all in the interval, it returns NaN; it never
	// errors, even for chromosomes or ranges the track has never seen.
	QueryMean(chrom string, start, end int) float64

	// Close releases any resources held by the track. Safe to call more than
	// once.
	Close() error
}

// run is one maximal stretch of constant signal.
type run struct {
	start, end int
	value      float64
}

// runTrack is the shared in-memory representation behind both file shapes.
type runTrack struct {
	name string
	runs map[string][]run
}

func (t *runTrack) Name() string { return t.name }

func (t *runTrack) Close() error { return nil }

func (t *runTrack) QueryMean(chrom string, start, end int) float64 {
	runs := t.runs[chrom]

	// First run that could overlap [start, end)
	i := sort.Search(len(runs), func(i int) bool { return runs[i].end > start })

	var sum float64
	var covered int
	for ; i < len(runs) && runs[i].start < end; i++ {
		lo, hi := runs[i].start, runs[i].end
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		if hi > lo {
			sum += runs[i].value * float64(hi-lo)
			covered += hi - lo
		}
	}

	if covered == 0 {
		return math.NaN()
	}
	return sum / float64(covered)
}

// add records one signal stretch during loading.
func (t *runTrack) add(chrom string, start, end int, value float64) {
	if end <= start {
		return
	}
	t.runs[chrom] = append(t.runs[chrom], run{start: start, end: end, value: value})
}

// finish sorts each chromosome's runs by start so QueryMean can binary
// search. Input files are usually already sorted; this makes it a guarantee.
func (t *runTrack) finish() {
	for _, runs := range t.runs {
		sort.Slice(runs, func(i, j int) bool { return runs[i].start < runs[j].start })
	}
}

func newRunTrack(name string) *runTrack {
	return &runTrack{name: name, runs: make(map[string][]run)}
}
