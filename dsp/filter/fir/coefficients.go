package fir

import "errors"

// Errors returned at construction time. Once construction succeeds the
// streaming operations are total over float64 and never fail.
var (
	// ErrInvalidDesign reports a coefficient set with no taps.
	ErrInvalidDesign = errors.New("fir: coefficient set must have at least one tap")

	// ErrSizeMismatch reports a history buffer whose length does not match
	// the bound coefficient set.
	ErrSizeMismatch = errors.New("fir: history buffer length mismatch")
)

// Coefficients is an immutable, ordered set of FIR taps.
//
// The tap slice is borrowed, not copied, so a coefficient set can wrap
// statically-allocated storage without touching the heap. The caller must
// not mutate the slice while a [Filter] bound to it is live. Tap index 0
// multiplies the newest input sample:
//
//	y[n] = sum_{k=0}^{M-1} c[k] * x[n-k]
//
// Taps are used as-is; non-finite values are accepted and propagate
// through filtering under ordinary floating-point arithmetic.
type Coefficients struct {
	taps []float64
}

// NewCoefficients wraps taps as an immutable coefficient set.
// Returns ErrInvalidDesign when taps is empty.
func NewCoefficients(taps []float64) (Coefficients, error) {
	if len(taps) == 0 {
		return Coefficients{}, ErrInvalidDesign
	}
	return Coefficients{taps: taps}, nil
}

// Len returns the number of taps M.
func (c Coefficients) Len() int {
	return len(c.taps)
}

// At returns the tap at index i. Index 0 multiplies the newest sample.
func (c Coefficients) At(i int) float64 {
	return c.taps[i]
}

// Order returns the filter order (Len() - 1).
func (c Coefficients) Order() int {
	return len(c.taps) - 1
}

// HistoryLen returns the number of delay-line slots a Filter bound to this
// set requires: Len() - 1.
func (c Coefficients) HistoryLen() int {
	return len(c.taps) - 1
}
