package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCases(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)

	assert.Equal(t, "Testing all implementations:\n"+
		"sum_to_n_iterative(5): 15\n"+
		"sum_to_n_formula(5): 15\n"+
		"sum_to_n_recursive(5): 15\n"+
		"sum_to_n_iterative(10): 55\n"+
		"sum_to_n_formula(10): 55\n"+
		"sum_to_n_recursive(10): 55\n", out)
}

func TestExplicitArguments(t *testing.T) {
	out, err := run(t, "100", "--", "-4")
	require.NoError(t, err)

	assert.Contains(t, out, "sum_to_n_formula(100): 5050\n")
	assert.Contains(t, out, "sum_to_n_recursive(-4): 0\n")
	assert.NotContains(t, out, "(5)")
}

func TestInvalidArgument(t *testing.T) {
	cases := map[string]string{
		"ten":                 `invalid n "ten": must be an integer`,
		"4294967296":          `invalid n "4294967296": must be at most 4294967295`,
		"5000000000":          `invalid n "5000000000": must be at most 4294967295`,
		"9223372036854775808": `invalid n "9223372036854775808": must be an integer`,
	}

	for arg, want := range cases {
		out, err := run(t, arg)
		assert.EqualError(t, err, want, arg)
		assert.NotContains(t, out, "sum_to_n_", arg)
	}
}

func TestRecursionSkippedAboveDepthLimit(t *testing.T) {
	out, err := run(t, "2000000")
	require.NoError(t, err)

	assert.Equal(t, "Testing all implementations:\n"+
		"sum_to_n_iterative(2000000): 2000001000000\n"+
		"sum_to_n_formula(2000000): 2000001000000\n"+
		"sum_to_n_recursive(2000000): skipped (n above 1000000)\n", out)
}
