package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smartcontractkit/nnprime/primes"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGCD(t *testing.T) {
	out, err := run(t, "", "gcd", "12", "18")
	require.NoError(t, err)
	require.Equal(t, "6\n", out)

	_, err = run(t, "", "gcd", "12", "-18")
	require.Error(t, err)
}

func TestPowMod(t *testing.T) {
	for _, backend := range []string{"digits", "montgomery"} {
		out, err := run(t, "", "powmod", "2", "100", "1000000007", "--backend", backend)
		require.NoError(t, err, backend)
		require.Equal(t, "976371285\n", out, backend)
	}

	_, err := run(t, "", "powmod", "2", "3", "1")
	require.ErrorContains(t, err, "invalid modulus")
}

func TestWitness(t *testing.T) {
	out, err := run(t, "", "witness", "3", "341")
	require.NoError(t, err)
	require.Equal(t, "3 is a witness that 341 is composite\n", out)

	out, err = run(t, "", "witness", "2", "341")
	require.NoError(t, err)
	require.Equal(t, "2 is not a witness that 341 is composite\n", out)

	_, err = run(t, "", "witness", "1", "7")
	require.ErrorContains(t, err, "invalid witness candidate")
	_, err = run(t, "", "witness", "6", "7")
	require.ErrorContains(t, err, "invalid witness candidate")
	_, err = run(t, "", "witness", "2", "2")
	require.ErrorContains(t, err, "invalid n")
}

func TestNext(t *testing.T) {
	out, err := run(t, "", "next", "1233", "--verdict", "all", "--seed", "next")
	require.NoError(t, err)
	require.Equal(t, "1237\n", out)

	_, err = run(t, "", "next", "24", "--max-candidates", "1", "--seed", "next")
	require.ErrorIs(t, err, primes.ErrSearchExhausted)

	_, err = run(t, "", "next", "1")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", "341", "97", "--verdict", "all", "--generator", "xof", "--seed", "check")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"341 is probably a prime number according to the deterministic witness test.",
		"341 is a composite number according to the multi-witness test.",
		"  next likely prime is 347",
		"97 is probably a prime number according to the deterministic witness test.",
		"97 is probably a prime number according to the multi-witness test.",
		"",
	}, "\n"), out)

	_, err = run(t, "", "check", "1")
	require.Error(t, err)
}

func TestCheckInteractive(t *testing.T) {
	out, err := run(t, "97\nabc\n1\n42\n", "check")
	require.NoError(t, err)
	require.Contains(t, out, "n = 97 is probably a prime number according to the deterministic witness test.")
	require.Contains(t, out, "97 is probably a prime number according to the multi-witness test.")
	require.Contains(t, out, "invalid input")
	require.True(t, strings.HasSuffix(out, "n = Bye!\n"), out)
	require.NotContains(t, out, "42")

	out, err = run(t, "5", "check")
	require.NoError(t, err)
	require.Contains(t, out, "5 is probably a prime number according to the multi-witness test.")
	require.True(t, strings.HasSuffix(out, "n = Bye!\n"), out)
}

func TestSample(t *testing.T) {
	out, err := run(t, "", "sample", "--bound", "17", "--samples", "1800", "--seed", "sample")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 19)
	require.True(t, strings.HasPrefix(lines[0], "count[0] = "))
	require.True(t, strings.HasPrefix(lines[17], "count[17] = "))
	require.Equal(t, "  expected value = 100", lines[18])

	_, err = run(t, "", "sample", "--bound", "0")
	require.Error(t, err)
}

func TestMetrics(t *testing.T) {
	out, err := run(t, "", "next", "24", "--verdict", "all", "--seed", "metrics", "--metrics")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "29\n"), out)
	require.Contains(t, out, "nnprime_search_candidates_total 4\n")
	require.Contains(t, out, `nnprime_witness_trials_total{outcome="witness"}`)
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := run(t, "", "gcd", "1", "2", "--trials", "0")
	require.Error(t, err)

	t.Setenv("NNPRIME_VERDICT", "bogus")
	_, err = run(t, "", "gcd", "1", "2")
	require.ErrorContains(t, err, "unknown verdict policy")
}
