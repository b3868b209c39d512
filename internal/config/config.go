package config

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/nnprime/internal/math"
	"github.com/smartcontractkit/nnprime/primes"
	"github.com/smartcontractkit/nnprime/rng"
	"github.com/smartcontractkit/nnprime/rng/unsaferand"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g. NNPRIME_TRIALS or NNPRIME_MAX_CANDIDATES.
const EnvPrefix = "NNPRIME"

const (
	BackendDigits     = "digits"
	BackendMontgomery = "montgomery"

	GeneratorMathRand = "mathrand"
	GeneratorXOF      = "xof"
	GeneratorChaCha20 = "chacha20"
	GeneratorSystem   = "system"
)

type Config struct {
	Trials        int    `mapstructure:"trials"`
	Verdict       string `mapstructure:"verdict"`
	Backend       string `mapstructure:"backend"`
	Generator     string `mapstructure:"generator"`
	Seed          string `mapstructure:"seed"`
	MaxCandidates int    `mapstructure:"max-candidates"`
	LogLevel      string `mapstructure:"log-level"`
}

func Defaults() Config {
	return Config{
		Trials:        primes.DefaultTrials,
		Verdict:       primes.LastTrialVerdict.String(),
		Backend:       BackendDigits,
		Generator:     GeneratorMathRand,
		Seed:          "",
		MaxCandidates: 0,
		LogLevel:      logrus.InfoLevel.String(),
	}
}

// RegisterFlags adds a flag for every configuration key to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.Int("trials", d.Trials, "number of random witness candidates per primality test")
	flags.String("verdict", d.Verdict, `how trial outcomes combine: "last" (final trial decides) or "all" (any witness means composite)`)
	flags.String("backend", d.Backend, `modular exponentiation backend: "digits" or "montgomery"`)
	flags.String("generator", d.Generator, `randomness source: "mathrand", "xof", "chacha20" or "system"`)
	flags.String("seed", d.Seed, "seed for deterministic generators; random if empty")
	flags.Int("max-candidates", d.MaxCandidates, "maximum candidates tested by a next prime search, 0 for no limit")
	flags.String("log-level", d.LogLevel, "log level (trace, debug, info, warn, error)")
}

// Load resolves the configuration from, in decreasing priority, explicitly set flags, NNPRIME_* environment
// variables, the optional config file (any format viper understands), and the defaults.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("trials", d.Trials)
	v.SetDefault("verdict", d.Verdict)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("generator", d.Generator)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max-candidates", d.MaxCandidates)
	v.SetDefault("log-level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("invalid trials %d, must be at least 1", c.Trials)
	}
	if _, err := primes.ParseVerdictPolicy(c.Verdict); err != nil {
		return err
	}
	switch c.Backend {
	case BackendDigits, BackendMontgomery:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Generator {
	case GeneratorMathRand, GeneratorXOF, GeneratorChaCha20, GeneratorSystem:
	default:
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("invalid max-candidates %d, must not be negative", c.MaxCandidates)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// TesterConfig translates c into the settings of a primes.Tester. c must be valid.
func (c Config) TesterConfig() primes.TesterConfig {
	policy, err := primes.ParseVerdictPolicy(c.Verdict)
	if err != nil {
		panic(err)
	}

	var exp primes.Exponentiator = primes.SquareAndMultiply{}
	if c.Backend == BackendMontgomery {
		exp = math.NewExponentiator()
	}

	return primes.TesterConfig{
		Trials:        c.Trials,
		Policy:        policy,
		Exponentiator: exp,
		MaxCandidates: c.MaxCandidates,
	}
}

// Source builds the configured randomness source. Deterministic generators without a seed get a random one.
// c must be valid.
func (c Config) Source() rng.Source {
	seed := c.Seed
	if seed == "" && c.Generator != GeneratorMathRand {
		var b [16]byte
		_, _ = crand.Read(b[:])
		seed = hex.EncodeToString(b[:])
	}

	switch c.Generator {
	case GeneratorMathRand:
		if seed == "" {
			return unsaferand.NewNondeterministic()
		}
		return unsaferand.New(seed)
	case GeneratorXOF:
		return rng.NewXOF(seed)
	case GeneratorChaCha20:
		return rng.NewChaCha20(seed)
	case GeneratorSystem:
		return rng.NewSystem()
	default:
		panic(fmt.Sprintf("unknown generator %q", c.Generator))
	}
}
