// Package assert provides the floating-point comparison oracle used by the
// JIT conformance suites. All functions are pure predicates; special IEEE-754
// values (NaN, infinities, subnormals) are classified, never rejected.
package assert

import "math"

// Default tolerances for approximate equality when the call site does not
// supply one. Double-precision results are expected to be accurate to well
// below 1e-10; single-precision arithmetic accumulates rounding error faster,
// so its default is looser.
const (
	DefaultTolerance   = 1e-10
	DefaultTolerance32 = float32(1e-5)
)

// AreApproxEqual reports whether actual is within DefaultTolerance of expected.
//
// NaN is never approximately equal to anything, including itself. Infinities
// of the same sign compare equal; infinities of opposite sign do not.
func AreApproxEqual(expected, actual float64) bool {
	return AreApproxEqualWithin(expected, actual, DefaultTolerance)
}

// AreApproxEqualWithin reports whether |expected - actual| <= tolerance.
// Special values follow the same rules as AreApproxEqual.
func AreApproxEqualWithin(expected, actual, tolerance float64) bool {
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return false
	}
	if math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		// Equal only when both are the same infinity.
		return expected == actual
	}
	return math.Abs(expected-actual) <= tolerance
}

// AreApproxEqual32 reports whether actual is within DefaultTolerance32 of
// expected, with the same special-value rules as AreApproxEqual.
func AreApproxEqual32(expected, actual float32) bool {
	return AreApproxEqualWithin32(expected, actual, DefaultTolerance32)
}

// AreApproxEqualWithin32 is the single-precision form of AreApproxEqualWithin.
// The comparison is carried out in float64 so the subtraction itself cannot
// overflow to infinity for finite operands.
func AreApproxEqualWithin32(expected, actual, tolerance float32) bool {
	if IsNaN32(expected) || IsNaN32(actual) {
		return false
	}
	if IsPositiveInfinity32(expected) || IsNegativeInfinity32(expected) ||
		IsPositiveInfinity32(actual) || IsNegativeInfinity32(actual) {
		return expected == actual
	}
	return math.Abs(float64(expected)-float64(actual)) <= float64(tolerance)
}

// IsNaN reports whether value is an IEEE-754 not-a-number.
func IsNaN(value float64) bool {
	return math.IsNaN(value)
}

// IsPositiveInfinity reports whether value is +Inf.
func IsPositiveInfinity(value float64) bool {
	return math.IsInf(value, 1)
}

// IsNegativeInfinity reports whether value is -Inf.
func IsNegativeInfinity(value float64) bool {
	return math.IsInf(value, -1)
}

// IsNaN32 reports whether value is a single-precision NaN.
// NaN is the only value unequal to itself.
func IsNaN32(value float32) bool {
	return value != value
}

// IsPositiveInfinity32 reports whether value is the single-precision +Inf.
func IsPositiveInfinity32(value float32) bool {
	return math.IsInf(float64(value), 1)
}

// IsNegativeInfinity32 reports whether value is the single-precision -Inf.
func IsNegativeInfinity32(value float32) bool {
	return math.IsInf(float64(value), -1)
}

// UlpDistance returns the distance between a and b in units in the last
// place, i.e. how many distinct float64 values lie between them. The bit
// patterns are remapped so that the ordering is monotonic across zero.
// Results for NaN operands are unspecified.
func UlpDistance(a, b float64) int64 {
	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))
	if ai < 0 {
		ai = math.MinInt64 - ai
	}
	if bi < 0 {
		bi = math.MinInt64 - bi
	}
	diff := ai - bi
	if diff < 0 {
		return -diff
	}
	return diff
}

// AreUlpEqual reports whether a and b are within maxUlp representable
// values of each other. NaN operands always compare unequal.
func AreUlpEqual(a, b float64, maxUlp int64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return UlpDistance(a, b) <= maxUlp
}
