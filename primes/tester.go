package primes

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/smartcontractkit/nnprime/internal/logger"
	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/rng"
)

// DefaultTrials is the number of random witness candidates tried by IsPrimeMultiWitness.
const DefaultTrials = 50

// VerdictPolicy selects how IsPrimeMultiWitness combines the outcomes of its trials.
type VerdictPolicy int

const (
	// LastTrialVerdict reports the outcome of the final trial only; earlier trials that found a witness are
	// overruled. This is the historical behaviour of the multi-witness test.
	LastTrialVerdict VerdictPolicy = iota
	// AllTrialsVerdict reports composite as soon as any trial finds a witness.
	AllTrialsVerdict
)

func (p VerdictPolicy) String() string {
	switch p {
	case LastTrialVerdict:
		return "last"
	case AllTrialsVerdict:
		return "all"
	default:
		return fmt.Sprintf("VerdictPolicy(%d)", int(p))
	}
}

func ParseVerdictPolicy(s string) (VerdictPolicy, error) {
	switch s {
	case "last":
		return LastTrialVerdict, nil
	case "all":
		return AllTrialsVerdict, nil
	default:
		return 0, fmt.Errorf("unknown verdict policy %q, expected \"last\" or \"all\"", s)
	}
}

type TesterConfig struct {
	// Number of witness candidates drawn per multi-witness test; DefaultTrials if not positive.
	Trials int
	Policy VerdictPolicy
	// Defaults to SquareAndMultiply.
	Exponentiator Exponentiator
	// Upper bound on the number of candidates NextLikelyPrime may test; 0 means unbounded.
	MaxCandidates int
}

// Tester decides primality with certainty for composites and with bounded error for primes.
// It is not safe for concurrent use unless its source is wrapped with rng.Locked.
type Tester struct {
	sampler       *Sampler
	exp           Exponentiator
	trials        int
	policy        VerdictPolicy
	maxCandidates int
	logger        commontypes.Logger
	metrics       *metrics
}

// NewTester returns a Tester drawing witness candidates from src. logger and registerer may be nil.
func NewTester(src rng.Source, config TesterConfig, lggr commontypes.Logger, registerer prometheus.Registerer) *Tester {
	if config.Trials <= 0 {
		config.Trials = DefaultTrials
	}
	if config.Exponentiator == nil {
		config.Exponentiator = SquareAndMultiply{}
	}
	if config.MaxCandidates < 0 {
		panic(fmt.Sprintf("primes: negative MaxCandidates %d", config.MaxCandidates))
	}
	if lggr == nil {
		lggr = logger.Nop()
	}

	m := newMetrics(registerer)
	return &Tester{
		newSampler(src, m),
		config.Exponentiator,
		config.Trials,
		config.Policy,
		config.MaxCandidates,
		lggr,
		m,
	}
}

// Sampler returns the Sampler used to draw witness candidates.
func (t *Tester) Sampler() *Sampler {
	return t.sampler
}

// IsWitness is the package-level IsWitness using the Tester's exponentiator.
func (t *Tester) IsWitness(w, n natural.Nat) bool {
	return isWitness(t.exp, w, n)
}

// IsPrimeDeterministicWitness reports whether n is probably prime, using 2 as the only witness candidate.
// Composites reported prime are exactly the Fermat pseudoprimes to base 2 (341, 561, 645, ...). Panics unless n > 1.
func IsPrimeDeterministicWitness(n natural.Nat) bool {
	return isPrimeDeterministicWitness(SquareAndMultiply{}, n)
}

func (t *Tester) IsPrimeDeterministicWitness(n natural.Nat) bool {
	return isPrimeDeterministicWitness(t.exp, n)
}

func isPrimeDeterministicWitness(exp Exponentiator, n natural.Nat) bool {
	if prime, decided := decideSmall(n); decided {
		return prime
	}
	return !isWitness(exp, two, n)
}

// IsPrimeMultiWitness reports whether n is probably prime, trying random witness candidates from [2, n-2]. A false
// result is always correct. How trial outcomes are combined depends on the configured VerdictPolicy.
// Panics unless n > 1.
func (t *Tester) IsPrimeMultiWitness(n natural.Nat) bool {
	if prime, decided := decideSmall(n); decided {
		return prime
	}

	hi := n.Clone().Subtract(two)
	prime := false
	for i := 0; i < t.trials; i++ {
		w := t.sampler.UniformRange(two, hi)
		witness := isWitness(t.exp, w, n)
		t.metrics.observeTrial(witness)
		if witness && t.policy == AllTrialsVerdict {
			return false
		}
		prime = !witness
	}
	return prime
}

// decideSmall settles n <= 3 (prime) and even n (composite) without witnesses. Panics unless n > 1.
func decideSmall(n natural.Nat) (prime bool, decided bool) {
	if n.CmpUint64(1) <= 0 {
		panic(fmt.Sprintf("primes: primality test requires n > 1, got %s", n))
	}
	if n.CmpUint64(3) <= 0 {
		return true, true
	}
	if n.IsEven() {
		return false, true
	}
	return false, false
}
