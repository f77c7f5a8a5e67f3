package core

// Zero sets all values in buf to 0.
//
// Callers typically use this to establish zero initial conditions in a
// statically-allocated filter history buffer before binding it, or to
// re-arm a buffer for a fresh stream.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
