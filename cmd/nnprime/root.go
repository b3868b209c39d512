package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/nnprime/internal/config"
	"github.com/smartcontractkit/nnprime/internal/logger"
	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/primes"
	"github.com/spf13/cobra"
)

// environment is the state shared by all subcommands, set up once the flags are parsed.
type environment struct {
	configFile  string
	showMetrics bool

	config   config.Config
	registry *prometheus.Registry
	tester   *primes.Tester
}

func newRootCmd() *cobra.Command {
	env := &environment{}

	root := &cobra.Command{
		Use:          "nnprime",
		Short:        "Probabilistic primality testing on arbitrary-precision natural numbers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !env.showMetrics {
				return nil
			}
			return env.printMetrics(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&env.configFile, "config", "", "configuration file (yaml, json or toml)")
	flags.BoolVar(&env.showMetrics, "metrics", false, "print collected metrics after the command completes")
	config.RegisterFlags(flags)

	root.AddCommand(
		checkCmd(env),
		nextCmd(env),
		sampleCmd(env),
		gcdCmd(),
		powmodCmd(env),
		witnessCmd(env),
	)
	return root
}

func (env *environment) setup(cmd *cobra.Command) error {
	c, err := config.Load(cmd.Flags(), env.configFile)
	if err != nil {
		return err
	}
	env.config = c

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetLevel(level)

	env.registry = prometheus.NewRegistry()
	env.tester = primes.NewTester(c.Source(), c.TesterConfig(), logger.NewFromLogrus(l), env.registry)
	return nil
}

func (env *environment) printMetrics(cmd *cobra.Command) error {
	families, err := env.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// parseArgs parses every argument as a decimal natural number.
func parseArgs(args []string) ([]natural.Nat, error) {
	ns := make([]natural.Nat, len(args))
	for i, arg := range args {
		n, err := natural.NewFromString(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ns[i] = n
	}
	return ns, nil
}
