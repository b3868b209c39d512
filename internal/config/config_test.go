package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcontractkit/nnprime/internal/math"
	"github.com/smartcontractkit/nnprime/primes"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(nil, "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), c)

	tc := c.TesterConfig()
	require.Equal(t, primes.DefaultTrials, tc.Trials)
	require.Equal(t, primes.LastTrialVerdict, tc.Policy)
	require.IsType(t, primes.SquareAndMultiply{}, tc.Exponentiator)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nnprime.yaml")
	require.NoError(t, os.WriteFile(file, []byte("trials: 7\nverdict: all\nbackend: montgomery\nmax-candidates: 9\n"), 0o600))

	t.Setenv("NNPRIME_MAX_CANDIDATES", "11")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--trials", "5"}))

	c, err := Load(flags, file)
	require.NoError(t, err)
	require.Equal(t, 5, c.Trials)         // flag beats file
	require.Equal(t, 11, c.MaxCandidates) // env beats file
	require.Equal(t, "all", c.Verdict)    // file beats default
	require.Equal(t, "mathrand", c.Generator)

	tc := c.TesterConfig()
	require.Equal(t, primes.AllTrialsVerdict, tc.Policy)
	require.IsType(t, &math.Exponentiator{}, tc.Exponentiator)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"NNPRIME_TRIALS":         "0",
		"NNPRIME_VERDICT":        "majority",
		"NNPRIME_BACKEND":        "gmp",
		"NNPRIME_GENERATOR":      "dice",
		"NNPRIME_MAX_CANDIDATES": "-1",
		"NNPRIME_LOG_LEVEL":      "chatty",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(nil, "")
			require.Error(t, err)
		})
	}

	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSource(t *testing.T) {
	for _, generator := range []string{GeneratorMathRand, GeneratorXOF, GeneratorChaCha20} {
		c := Defaults()
		c.Generator = generator
		c.Seed = "fixed"
		require.Equal(t, c.Source().Float64(), c.Source().Float64(), generator)
	}

	c := Defaults()
	c.Generator = GeneratorSystem
	v := c.Source().Float64()
	require.GreaterOrEqual(t, v, 0.0)
	require.Less(t, v, 1.0)
}
