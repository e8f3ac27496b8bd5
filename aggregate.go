package trackcorr

import (
	"fmt"

	"github.com/genomelab/trackcorr/annot"
	"github.com/genomelab/trackcorr/track"
)

// Matrix is the aggregated value table: one row per logical sample, one
// column per annotated interval. It is constructed once by Aggregate and
// column-filtered once by FilterOutliers; rows are never reordered, since row
// order carries the declared sample-name order.
type Matrix [][]float64

// Aggregate computes the mean signal of each track over each annotated
// interval. With 2 tracks it yields one row per track. With 4 tracks and no
// strand handling, consecutive track pairs are summed element-wise into 2
// rows (e.g. plus-strand coverage + minus-strand coverage per sample). With
// ByStrand set, each consecutive pair is instead collapsed by strand
// matching: the even track serves "+" intervals and the odd track serves "-"
// intervals.
//
// An interval a track does not cover at all aggregates to NaN. In strand
// mode, an interval annotated with neither strand keeps the zero value
// instead; note that this differs from the NaN convention used everywhere
// else, so zero there is indistinguishable from true zero signal.
func Aggregate(intervals []annot.Interval, tracks []track.Track, cfg Config) (Matrix, error) {
	if n := len(tracks); n != 2 && n != 4 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidInputCount, n)
	}

	if cfg.ByStrand {
		return aggregateByStrand(intervals, tracks), nil
	}

	raw := make(Matrix, len(tracks))
	for ti, tr := range tracks {
		row := make([]float64, len(intervals))
		for i, iv := range intervals {
			row[i] = tr.QueryMean(iv.Chrom, iv.Start, iv.End)
		}
		raw[ti] = row
	}

	if len(tracks) == 2 {
		return raw, nil
	}

	// Group-sum: 4 raw tracks become 2 logical samples.
	out := make(Matrix, 2)
	for p := range out {
		row := make([]float64, len(intervals))
		for i := range intervals {
			row[i] = raw[2*p][i] + raw[2*p+1][i]
		}
		out[p] = row
	}
	return out, nil
}

func aggregateByStrand(intervals []annot.Interval, tracks []track.Track) Matrix {
	out := make(Matrix, len(tracks)/2)
	for p := range out {
		plus, minus := tracks[2*p], tracks[2*p+1]
		row := make([]float64, len(intervals))
		for i, iv := range intervals {
			switch iv.Strand {
			case annot.StrandPlus:
				row[i] = plus.QueryMean(iv.Chrom, iv.Start, iv.End)
			case annot.StrandMinus:
				row[i] = minus.QueryMean(iv.Chrom, iv.Start, iv.End)
			default:
				// Strandless: the slot keeps its zero value.
			}
		}
		out[p] = row
	}
	return out
}
