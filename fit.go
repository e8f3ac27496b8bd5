package trackcorr

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Fit is an ordinary least-squares line y = Slope*x + Intercept with its
// coefficient of determination. It is derived from exactly one pair of
// aggregated sample vectors and recomputed per run.
type Fit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// FitOLS fits y = slope*x + intercept by ordinary least squares. It fails
// with ErrInsufficientSamples for fewer than two points and with
// ErrDegenerateInput when x has zero variance, rather than letting a NaN
// slope propagate into the plot.
func FitOLS(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("mismatched sample lengths %d and %d", len(x), len(y))
	}
	if len(x) < 2 {
		return Fit{}, fmt.Errorf("%w (got %d)", ErrInsufficientSamples, len(x))
	}
	if stat.Variance(x, nil) == 0 {
		return Fit{}, fmt.Errorf("%w: all x values equal %g", ErrDegenerateInput, x[0])
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)

	return Fit{Slope: beta, Intercept: alpha, R2: r2}, nil
}
