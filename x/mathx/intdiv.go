package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns (a + b/2) / b, i.e. round-half-up for unsigned maths.
// b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// ScaleDiv returns v*num/den with a 64-bit intermediate. den == 0 yields 0.
func ScaleDiv[T constraints.Unsigned](v, num, den T) T {
	if den == 0 {
		return 0
	}
	return T(uint64(v) * uint64(num) / uint64(den))
}
