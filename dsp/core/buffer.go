package core

// Element is the set of slice element types the buffer helpers accept.
type Element interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[E Element](buf []E, n int) []E {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]E, n)
}

// Zero sets all values in buf to the zero value.
func Zero[E Element](buf []E) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[E Element](dst, src []E) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
