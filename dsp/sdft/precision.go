package sdft

// Complex is the set of element types an engine can be instantiated
// with. The type parameter fixes the floating-point precision of every
// buffer and every arithmetic operation of that instance; combining
// engines of different precisions is therefore rejected by the compiler
// rather than at run time.
type Complex interface {
	complex64 | complex128
}

// Precision identifies a floating-point precision at the configuration
// boundary, for sizing and reporting.
type Precision int

const (
	// Single selects complex64 (two float32 values per sample).
	Single Precision = iota

	// Double selects complex128 (two float64 values per sample).
	Double

	// Extended is accepted for compatibility with configurations that
	// request long-double precision. Go has no extended-precision
	// float type, so it behaves exactly like Double.
	Extended
)

// String returns a short human-readable precision name.
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double, Extended:
		return "double"
	default:
		return "unknown"
	}
}

// ComplexBytes returns the byte size of one complex sample at this
// precision. Together with the buffer length query this gives the
// exact allocation size a caller needs; sizing for [Extended] (the
// largest supported precision) is valid for any precision chosen at
// construction time.
func (p Precision) ComplexBytes() int {
	if p == Single {
		return 8
	}
	return 16
}

// PrecisionOf reports the precision of the element type C.
func PrecisionOf[C Complex]() Precision {
	var zero C
	if _, ok := any(zero).(complex64); ok {
		return Single
	}
	return Double
}
