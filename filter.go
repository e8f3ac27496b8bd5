package trackcorr

import (
	"math"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// FilterOutliers drops interval columns whose value exceeds the given
// percentile on any row. The threshold is computed per row over that row's
// finite values; a column survives only if every row's value is at or below
// its own row's threshold. A NaN never satisfies the comparison, so intervals
// with missing data on any sample are dropped at every percentile, including
// 100. Columns are removed from all rows together.
//
// The returned index slice maps surviving columns back to their original
// positions.
func FilterOutliers(m Matrix, percentile float64) (Matrix, []int, error) {
	if len(m) == 0 {
		return m, nil, nil
	}

	thresholds := make([]float64, len(m))
	for r, row := range m {
		finite := make([]float64, 0, len(row))
		for _, v := range row {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
		if len(finite) == 0 {
			// Every comparison against NaN fails, so this row drops all
			// columns.
			thresholds[r] = math.NaN()
			continue
		}

		th, err := stats.Percentile(finite, percentile)
		if err != nil {
			return nil, nil, pfx.Err(err)
		}
		thresholds[r] = th
	}

	var kept []int
	for c := range m[0] {
		keep := true
		for r := range m {
			if !(m[r][c] <= thresholds[r]) {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, c)
		}
	}

	out := make(Matrix, len(m))
	for r := range m {
		row := make([]float64, len(kept))
		for i, c := range kept {
			row[i] = m[r][c]
		}
		out[r] = row
	}

	return out, kept, nil
}
