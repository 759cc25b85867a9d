// Package summation computes 1 + 2 + ... + n three different ways.
//
// All three return 0 for n <= 0 and agree for every n whose sum fits in
// an int64 (n <= MaxN).
package summation

const (
	// MaxN is the largest n whose sum fits in an int64.
	MaxN int64 = 4294967295

	// MaxRecursiveN bounds the recursion depth SumToNRecursive is used with.
	// Deeper calls hit the runtime's goroutine stack limit, which is fatal.
	MaxRecursiveN int64 = 1_000_000
)

// SumToNIterative adds the terms one by one.
//
// O(n) time, O(1) space.
func SumToNIterative(n int64) int64 {
	var sum int64
	for i := int64(1); i <= n; i++ {
		sum += i
	}
	return sum
}

// SumToNFormula uses Gauss' closed form n(n+1)/2.
//
// O(1) time and space. The even factor is halved before multiplying so
// the intermediate product never exceeds the result.
func SumToNFormula(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n%2 == 0 {
		return (n / 2) * (n + 1)
	}
	return n * ((n + 1) / 2)
}

// SumToNRecursive defines the sum as n + sum(n-1).
//
// O(n) time and O(n) stack. Callers keep n <= MaxRecursiveN.
func SumToNRecursive(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return n + SumToNRecursive(n-1)
}
