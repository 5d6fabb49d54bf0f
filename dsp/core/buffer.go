package core

// EnsureLen returns a slice of length n, reusing the capacity of buf when it suffices.
// The contents of a reused slice are left as they were.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	Fill(buf, 0)
}

// Fill sets every element of buf to value.
func Fill(buf []float64, value float64) {
	for i := range buf {
		buf[i] = value
	}
}
