// Package trackcorr compares two genome-wide signal tracks by aggregating
// per-feature signal over an annotation, trimming outliers by percentile, and
// fitting an ordinary least-squares line between the two aggregated samples,
// with a Gaussian kernel density estimate over the paired points for plot
// weighting.
package trackcorr

// Config carries the run-wide settings. It is built once by the caller and
// passed by value through each stage; stages never mutate it.
type Config struct {
	// ByStrand enables strand-distinguishing aggregation: consecutive track
	// pairs are the +/- strand variants of one logical sample.
	ByStrand bool

	// Percentile is the outlier-trimming threshold in (0, 100]. 100 keeps
	// every interval with finite signal on all samples.
	Percentile float64
}

// DefaultConfig matches the command-line defaults: no strand handling, no
// outlier trimming beyond dropping intervals with missing data.
func DefaultConfig() Config {
	return Config{Percentile: 100}
}
