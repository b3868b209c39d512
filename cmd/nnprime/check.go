package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/smartcontractkit/nnprime/natural"
	"github.com/spf13/cobra"
)

func checkCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "check [n...]",
		Short: "Test numbers for primality and report the next likely prime after composites",
		Long: `Tests each n > 1 with both the deterministic (base 2) and the multi-witness test. For numbers the
multi-witness test rejects, the next likely prime is searched as well.

Without arguments, numbers are read from standard input one per line until a number below 2 is entered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return env.checkInteractive(cmd)
			}
			ns, err := parseArgs(args)
			if err != nil {
				return err
			}
			for _, n := range ns {
				if n.CmpUint64(2) < 0 {
					return fmt.Errorf("cannot test %s, numbers must be at least 2", n)
				}
			}
			for _, n := range ns {
				if err := env.check(cmd, n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (env *environment) checkInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "n = ")
		line, err := in.ReadString('\n')
		if err == io.EOF && line == "" {
			fmt.Fprintln(out, "Bye!")
			return nil
		}
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading input: %w", err)
		}

		n, perr := natural.NewFromString(strings.TrimSpace(line))
		if perr != nil {
			fmt.Fprintf(out, "invalid input: %v\n", perr)
			continue
		}
		if n.CmpUint64(2) < 0 {
			fmt.Fprintln(out, "Bye!")
			return nil
		}
		if err := env.check(cmd, n); err != nil {
			return err
		}
	}
}

// check reports both verdicts for n and, if the multi-witness test rejects it, the next likely prime.
func (env *environment) check(cmd *cobra.Command, n natural.Nat) error {
	out := cmd.OutOrStdout()
	report := func(prime bool, test string) {
		if prime {
			fmt.Fprintf(out, "%s is probably a prime number according to the %s test.\n", n, test)
		} else {
			fmt.Fprintf(out, "%s is a composite number according to the %s test.\n", n, test)
		}
	}

	report(env.tester.IsPrimeDeterministicWitness(n), "deterministic witness")
	if env.tester.IsPrimeMultiWitness(n) {
		report(true, "multi-witness")
		return nil
	}
	report(false, "multi-witness")

	next := n.Clone()
	if err := env.tester.NextLikelyPrime(cmd.Context(), next); err != nil {
		return err
	}
	fmt.Fprintf(out, "  next likely prime is %s\n", next)
	return nil
}
