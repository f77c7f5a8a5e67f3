// Package spectrum provides FFT-based frequency-response analysis for FIR
// coefficient sets.
//
// [Analyze] treats the taps as the filter's impulse response, zero-pads
// them to a power-of-two FFT size, and returns the non-negative-frequency
// bins DC..Nyquist. The resulting [Result] exposes magnitude, power, dB,
// and phase views of the response on the FFT grid.
//
// Analysis is an offline diagnostic for an existing design; it plays no
// part in the streaming runtime and is free to allocate.
package spectrum
