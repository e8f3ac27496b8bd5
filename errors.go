package trackcorr

import "errors"

var (
	// ErrInvalidInputCount indicates a track count other than 2 or 4.
	ErrInvalidInputCount = errors.New("number of input tracks must be 2 or 4")

	// ErrInsufficientSamples indicates fewer than 2 paired samples survived
	// aggregation and filtering.
	ErrInsufficientSamples = errors.New("need at least 2 paired samples")

	// ErrDegenerateInput indicates a zero-variance regressor, for which the
	// fitted slope would be undefined.
	ErrDegenerateInput = errors.New("regression input has zero variance")

	// ErrDensityUndefined indicates too few or too degenerate points for a
	// kernel density estimate.
	ErrDensityUndefined = errors.New("density cannot be estimated")
)
