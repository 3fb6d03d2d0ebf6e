// Package numerology implements the calculation engine: the digit reducer
// and the four derived-number calculators. Everything here is a pure function
// over plain values; no I/O, no logging, no errors.
package numerology

// Master numbers are exempt from further digit reduction.
const (
	MasterEleven      = 11
	MasterTwentyTwo   = 22
	MasterThirtyThree = 33
)

// isMaster reports whether n is one of the master numbers 11, 22 or 33.
func isMaster(n int) bool {
	return n == MasterEleven || n == MasterTwentyTwo || n == MasterThirtyThree
}

// Reduce collapses a non-negative integer to a single digit or a master
// number by repeatedly summing its decimal digits. The master check runs
// against the current accumulator before every reduction step, so a value
// that lands exactly on 11, 22 or 33 stops immediately: Reduce(29) is 11
// (2+9 lands on a master), not 2.
//
// Reduce(0) is 0; callers are responsible for ensuring meaningful non-zero
// sums.
func Reduce(n int) int {
	for n > 9 && !isMaster(n) {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}

	return n
}
