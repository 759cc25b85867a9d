package summation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumToN(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{n: -7, want: 0},
		{n: -1, want: 0},
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 3},
		{n: 5, want: 15},
		{n: 10, want: 55},
		{n: 100, want: 5050},
		{n: 10000, want: 50005000},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SumToNIterative(tc.n), "iterative(%d)", tc.n)
		assert.Equal(t, tc.want, SumToNFormula(tc.n), "formula(%d)", tc.n)
		assert.Equal(t, tc.want, SumToNRecursive(tc.n), "recursive(%d)", tc.n)
	}
}

func TestImplementationsAgree(t *testing.T) {
	for n := int64(-3); n <= 2000; n++ {
		want := SumToNIterative(n)
		assert.Equal(t, want, SumToNFormula(n), "formula(%d)", n)
		assert.Equal(t, want, SumToNRecursive(n), "recursive(%d)", n)
	}
}

func TestFormulaLargestInput(t *testing.T) {
	assert.Equal(t, int64(9223372034707292160), SumToNFormula(MaxN))
}

func TestRecursiveAtDepthLimit(t *testing.T) {
	assert.Equal(t, SumToNFormula(MaxRecursiveN), SumToNRecursive(MaxRecursiveN))
}
