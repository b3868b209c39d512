package main

import (
	"fmt"

	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/primes"
	"github.com/spf13/cobra"
)

func nextCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "next <n>",
		Short: "Print the smallest likely prime >= n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseArgs(args)
			if err != nil {
				return err
			}
			n := ns[0]
			if n.CmpUint64(2) < 0 {
				return fmt.Errorf("cannot search from %s, n must be at least 2", n)
			}
			if err := env.tester.NextLikelyPrime(cmd.Context(), n); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func sampleCmd(env *environment) *cobra.Command {
	var bound, samples int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw uniform samples from [0, bound] and print a histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bound < 1 {
				return fmt.Errorf("invalid bound %d, must be at least 1", bound)
			}
			if samples < 1 {
				return fmt.Errorf("invalid samples %d, must be at least 1", samples)
			}

			n := natural.NewFromUint64(uint64(bound))
			count := make([]int, bound+1)
			for i := 0; i < samples; i++ {
				v, err := env.tester.Sampler().Uniform(n).Int()
				if err != nil {
					return err
				}
				count[v]++
			}

			out := cmd.OutOrStdout()
			for i, c := range count {
				fmt.Fprintf(out, "count[%d] = %d\n", i, c)
			}
			fmt.Fprintf(out, "  expected value = %v\n", float64(samples)/float64(bound+1))
			return nil
		},
	}
	cmd.Flags().IntVar(&bound, "bound", 17, "inclusive upper bound of the samples")
	cmd.Flags().IntVar(&samples, "samples", 100000, "number of samples to draw")
	return cmd
}

func gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd <a> <b>",
		Short: "Print the greatest common divisor of a and b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), primes.GCD(ns[0], ns[1]))
			return nil
		},
	}
}

func powmodCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "powmod <n> <p> <m>",
		Short: "Print n^p mod m",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseArgs(args)
			if err != nil {
				return err
			}
			n, p, m := ns[0], ns[1], ns[2]
			if m.CmpUint64(1) <= 0 {
				return fmt.Errorf("invalid modulus %s, must be greater than 1", m)
			}
			env.config.TesterConfig().Exponentiator.PowerMod(n, p, m)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func witnessCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "witness <w> <n>",
		Short: "Report whether w proves n composite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseArgs(args)
			if err != nil {
				return err
			}
			w, n := ns[0], ns[1]
			if n.CmpUint64(2) <= 0 {
				return fmt.Errorf("invalid n %s, must be greater than 2", n)
			}
			if w.CmpUint64(1) <= 0 || w.Cmp(n.Clone().Decrement()) >= 0 {
				return fmt.Errorf("invalid witness candidate %s, must satisfy 1 < w < %s", w, n.Clone().Decrement())
			}

			if env.tester.IsWitness(w, n) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is a witness that %s is composite\n", w, n)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not a witness that %s is composite\n", w, n)
			}
			return nil
		},
	}
}
