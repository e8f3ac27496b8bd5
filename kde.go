package trackcorr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Densities evaluates a two-dimensional Gaussian kernel density estimate of
// the paired samples at each observed point, yielding one density per point
// aligned with the inputs. The bandwidth matrix is the sample covariance
// scaled by Scott's factor n^(-1/3) (squared n^(-1/6) per axis), so repeated
// runs over the same data are identical.
//
// Collinear or near-constant samples make the covariance singular; in that
// case a small ridge is added to the diagonal before giving up. Fewer than 2
// points, or a covariance that stays singular, fail with ErrDensityUndefined.
func Densities(x, y []float64) ([]float64, error) {
	n := len(x)
	if len(y) != n {
		return nil, fmt.Errorf("mismatched sample lengths %d and %d", n, len(y))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w with %d points", ErrDensityUndefined, n)
	}

	data := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		data.Set(i, 0, x[i])
		data.Set(i, 1, y[i])
	}

	cov := mat.NewSymDense(2, nil)
	stat.CovarianceMatrix(cov, data, nil)

	// Scott's rule for d=2
	scott := math.Pow(float64(n), -1.0/6.0)
	bw := mat.NewSymDense(2, nil)
	bw.ScaleSym(scott*scott, cov)

	kernel, ok := distmv.NewNormal([]float64{0, 0}, bw, nil)
	if !ok {
		ridge := 1e-9*(bw.At(0, 0)+bw.At(1, 1)) + 1e-12
		bw.SetSym(0, 0, bw.At(0, 0)+ridge)
		bw.SetSym(1, 1, bw.At(1, 1)+ridge)
		if kernel, ok = distmv.NewNormal([]float64{0, 0}, bw, nil); !ok {
			return nil, fmt.Errorf("%w: singular covariance", ErrDensityUndefined)
		}
	}

	out := make([]float64, n)
	diff := make([]float64, 2)
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			diff[0] = x[j] - x[i]
			diff[1] = y[j] - y[i]
			sum += math.Exp(kernel.LogProb(diff))
		}
		out[j] = sum / float64(n)
	}
	return out, nil
}
