// Package checked provides overflow-checked integer arithmetic for byte
// counts. Sizes are expressed as int because Go slice lengths and
// capacities are int; the representable ceiling is math.MaxInt.
//
// All functions are pure: no allocation, no side effects, constant time.
package checked

import "math"

// Mul multiplies an element count by an element size, returning ok = false
// when the mathematical product would not fit in an int. Negative inputs
// are invalid size requests and report ok = false.
func Mul(count, elemSize int) (int, bool) {
	if count < 0 || elemSize < 0 {
		return 0, false
	}
	if elemSize != 0 && count > math.MaxInt/elemSize {
		return 0, false
	}
	return count * elemSize, true
}

// Add adds two element counts, returning ok = false when the mathematical
// sum would not fit in an int. Negative inputs report ok = false.
func Add(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Bytes computes the total byte size of count elements of elemSize bytes.
// It is Mul under a name that reads better at allocation call sites.
func Bytes(count, elemSize int) (int, bool) {
	return Mul(count, elemSize)
}
