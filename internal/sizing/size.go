// Package sizing provides checked offset arithmetic for the little-endian
// formats read by this module.
package sizing

import "math"

// ToInt converts a uint64 to int, returning overflowErr if it doesn't fit.
func ToInt(size uint64, overflowErr error) (int, error) {
	if size > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(size), nil
}

// ToUint32 converts an int to uint32, returning overflowErr if it is
// negative or doesn't fit.
func ToUint32(n int, overflowErr error) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, overflowErr
	}
	return uint32(n), nil
}

// AddUint32 adds two uint32 values, returning (result, false) on overflow.
func AddUint32(a, b uint32) (uint32, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// Range reports whether [off, off+n) lies inside a buffer of length size.
// It never overflows.
func Range(off, n, size int) bool {
	if off < 0 || n < 0 || size < 0 {
		return false
	}
	return off <= size && n <= size-off
}

// Mul multiplies non-negative ints, returning (result, false) on overflow.
func Mul(factors ...int) (int, bool) {
	product := 1
	for _, f := range factors {
		if f < 0 {
			return 0, false
		}
		if f != 0 && product > math.MaxInt/f {
			return 0, false
		}
		product *= f
	}
	return product, true
}
