package fir

import (
	"fmt"

	"github.com/ReeceStevens/digital-filter/dsp/core"
)

// Filter implements a direct-form FIR filter using a circular delay line
// held in caller-provided storage.
//
// The filter owns nothing: both the coefficient set and the history buffer
// are borrowed at construction and only read or overwritten in place,
// never grown or reallocated. While a Filter is live it is the sole writer
// of its history buffer; mutating the buffer externally corrupts filter
// state. The core provides no locking — confine a Filter to one goroutine
// or serialize calls externally.
type Filter struct {
	coeffs  Coefficients
	history []float64
	pos     int
}

// New binds a coefficient set of M taps to a caller-allocated history
// buffer of exactly M-1 slots and returns a filter ready to stream.
//
// The buffer contents are taken as-is as the initial delay-line state,
// ordered oldest to newest: history[len-1] is treated as the most recent
// previous input. A zeroed buffer gives zero initial conditions; a
// [Filter.History] snapshot resumes a suspended stream.
//
// Returns ErrInvalidDesign for an empty coefficient set and
// ErrSizeMismatch when len(history) != M-1. No other validation is
// performed; non-finite taps or seeded history values are accepted.
func New(coeffs Coefficients, history []float64) (*Filter, error) {
	if coeffs.Len() == 0 {
		return nil, ErrInvalidDesign
	}
	if want := coeffs.HistoryLen(); len(history) != want {
		return nil, fmt.Errorf("%w: %d taps need %d slots, got %d",
			ErrSizeMismatch, coeffs.Len(), want, len(history))
	}
	return &Filter{coeffs: coeffs, history: history}, nil
}

// NewFromTaps is shorthand for NewCoefficients followed by New.
func NewFromTaps(taps, history []float64) (*Filter, error) {
	coeffs, err := NewCoefficients(taps)
	if err != nil {
		return nil, err
	}
	return New(coeffs, history)
}

// ProcessSample filters one input sample:
//
//	y[n] = c[0]*x[n] + sum_{k=1}^{M-1} c[k] * x[n-k]
//
// The sum runs in ascending tap order, so rounding is deterministic across
// runs. The input is then written over the oldest history slot (a no-op
// for a single-tap filter). Never allocates and never fails; NaN and Inf
// inputs propagate under ordinary floating-point rules.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.coeffs.taps[0] * x
	n := len(f.history)
	p := f.pos
	for k := 1; k <= n; k++ {
		p--
		if p < 0 {
			p = n - 1
		}
		y += f.coeffs.taps[k] * f.history[p]
	}
	if n > 0 {
		f.history[f.pos] = x
		f.pos++
		if f.pos >= n {
			f.pos = 0
		}
	}
	return y
}

// ProcessBlock filters a block of samples in-place, exactly as if each
// sample had been passed to ProcessSample in order. An empty block leaves
// the filter untouched.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length. Equivalent to per-sample ProcessSample calls; an empty src
// writes nothing.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the delay line and rewinds the write cursor, restoring
// zero initial conditions in the caller's buffer.
func (f *Filter) Reset() {
	core.Zero(f.history)
	f.pos = 0
}

// History returns a copy of the delay line ordered oldest to newest.
//
// The snapshot is a resume point: constructing a new Filter with the same
// coefficients over the returned slice continues the stream exactly where
// this one left off.
func (f *Filter) History() []float64 {
	dst := make([]float64, len(f.history))
	f.copyHistory(dst)
	return dst
}

// HistoryTo writes the oldest-to-newest delay-line snapshot into dst
// without allocating. Returns ErrSizeMismatch when len(dst) differs from
// the history length.
func (f *Filter) HistoryTo(dst []float64) error {
	if len(dst) != len(f.history) {
		return fmt.Errorf("%w: history has %d slots, got %d",
			ErrSizeMismatch, len(f.history), len(dst))
	}
	f.copyHistory(dst)
	return nil
}

func (f *Filter) copyHistory(dst []float64) {
	n := len(f.history)
	for i := range n {
		j := f.pos + i
		if j >= n {
			j -= n
		}
		dst[i] = f.history[j]
	}
}

// Coefficients returns the bound coefficient set.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// Order returns the filter order (tap count - 1).
func (f *Filter) Order() int {
	return f.coeffs.Order()
}
