// Package fir provides a direct-form FIR filter runtime over
// caller-provided storage.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular delay line held in a history buffer the caller allocates
// up front. The processing path never allocates, never blocks, and runs in
// O(M) per sample for M taps, which makes it usable from control loops and
// interrupt-style contexts that cannot tolerate a heap.
//
// With a zero-initialized history buffer the output matches
// scipy.signal.lfilter with an all-zero denominator and zero initial
// conditions. Seeding the buffer with a previous [Filter.History] snapshot
// resumes a suspended stream instead.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc, Parks-McClellan, etc.) is a separate concern; use an
// external design tool and feed the resulting taps in.
package fir
