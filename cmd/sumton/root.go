package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ductran2702/code-challenge-backend/internal/lib/summation"
	"github.com/spf13/cobra"
)

var demoInputs = []int64{5, 10}

type implementation struct {
	name string
	fn   func(int64) int64
	// max is the largest n fn is run with; larger inputs are reported as skipped.
	max int64
}

var implementations = []implementation{
	{name: "iterative", fn: summation.SumToNIterative, max: summation.MaxN},
	{name: "formula", fn: summation.SumToNFormula, max: summation.MaxN},
	{name: "recursive", fn: summation.SumToNRecursive, max: summation.MaxRecursiveN},
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sumton [n...]",
		Short: "Sum the integers from 1 to n three different ways",
		Long: "sumton prints 1 + 2 + ... + n for every argument using an iterative loop,\n" +
			"Gauss' formula and recursion. Without arguments it runs the demo cases 5 and 10.\n" +
			"Non-positive n sums to 0; pass negative values after \"--\".\n" +
			fmt.Sprintf("n may be at most %d; recursion is skipped above %d.", summation.MaxN, summation.MaxRecursiveN),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(args)
			if err != nil {
				return err
			}

			return printSums(cmd.OutOrStdout(), inputs)
		},
	}
}

func parseInputs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return demoInputs, nil
	}

	inputs := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid n %q: must be an integer", arg)
		}
		if n > summation.MaxN {
			return nil, fmt.Errorf("invalid n %q: must be at most %d", arg, summation.MaxN)
		}
		inputs = append(inputs, n)
	}
	return inputs, nil
}

func printSums(w io.Writer, inputs []int64) error {
	if _, err := fmt.Fprintln(w, "Testing all implementations:"); err != nil {
		return err
	}

	for _, n := range inputs {
		for _, impl := range implementations {
			var err error
			if n > impl.max {
				_, err = fmt.Fprintf(w, "sum_to_n_%s(%d): skipped (n above %d)\n", impl.name, n, impl.max)
			} else {
				_, err = fmt.Fprintf(w, "sum_to_n_%s(%d): %d\n", impl.name, n, impl.fn(n))
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
