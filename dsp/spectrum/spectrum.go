package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/ReeceStevens/digital-filter/dsp/core"
)

// Errors returned by Analyze.
var (
	ErrEmptyTaps       = errors.New("spectrum: coefficient set is empty")
	ErrFFTSizeTooSmall = errors.New("spectrum: fft size smaller than tap count")
)

const minDefaultFFTSize = 256

// Result holds the non-negative-frequency response bins of an analyzed
// coefficient set, from DC through Nyquist.
type Result struct {
	fftSize int
	bins    []complex128
}

// Analyze computes the frequency response of a FIR coefficient set by
// zero-padding its impulse response (the taps themselves) to fftSize and
// applying a forward FFT.
//
// fftSize is rounded up to the next power of two. A non-positive fftSize
// selects a default grid of at least 8x the tap count. Returns
// ErrEmptyTaps for an empty set and ErrFFTSizeTooSmall when the requested
// size cannot hold the taps.
func Analyze(taps []float64, fftSize int) (Result, error) {
	if len(taps) == 0 {
		return Result{}, ErrEmptyTaps
	}
	if fftSize <= 0 {
		fftSize = 8 * len(taps)
		if fftSize < minDefaultFFTSize {
			fftSize = minDefaultFFTSize
		}
	} else if fftSize < len(taps) {
		return Result{}, fmt.Errorf("%w: %d < %d taps", ErrFFTSizeTooSmall, fftSize, len(taps))
	}
	fftSize = nextPowerOf2(fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, tap := range taps {
		in[i] = complex(tap, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Result{fftSize: fftSize, bins: out[:fftSize/2+1]}, nil
}

// FFTSize returns the FFT size that produced the bins.
func (r Result) FFTSize() int {
	return r.fftSize
}

// Len returns the number of bins (FFTSize/2 + 1).
func (r Result) Len() int {
	return len(r.bins)
}

// Bins returns the complex response bins DC..Nyquist. The slice is shared
// with the Result; treat it as read-only.
func (r Result) Bins() []complex128 {
	return r.bins
}

// BinFrequency returns the center frequency in Hz of the given bin for a
// stream sampled at sampleRate.
func (r Result) BinFrequency(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(r.fftSize)
}

// Magnitude returns |H[k]| for each bin.
//
// The sqrt(re^2+im^2) kernel is SIMD-accelerated where the host CPU
// supports it (AVX2, SSE2, NEON).
func (r Result) Magnitude() []float64 {
	if len(r.bins) == 0 {
		return nil
	}
	out := make([]float64, len(r.bins))
	re, im := unpack(r.bins)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |H[k]|^2 for each bin using the same SIMD dispatch as
// Magnitude.
func (r Result) Power() []float64 {
	if len(r.bins) == 0 {
		return nil
	}
	out := make([]float64, len(r.bins))
	re, im := unpack(r.bins)
	vecmath.Power(out, re, im)
	return out
}

// MagnitudeDB returns the magnitude response in dB (20*log10). Bins with
// zero magnitude map to -Inf.
func (r Result) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// Phase returns arg(H[k]) for each bin in radians.
func (r Result) Phase() []float64 {
	if len(r.bins) == 0 {
		return nil
	}
	out := make([]float64, len(r.bins))
	for i, c := range r.bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}

func unpack(bins []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(bins))
	re, im = buf[:len(bins)], buf[len(bins):]
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
