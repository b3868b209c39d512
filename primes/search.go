package primes

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/smartcontractkit/nnprime/natural"
)

var ErrSearchExhausted = errors.New("candidate limit reached before a likely prime was found")

// NextLikelyPrime updates n to the smallest number >= n accepted by IsPrimeMultiWitness, stepping through odd
// candidates only. Panics unless n > 1.
//
// The search stops early when ctx is done or when MaxCandidates candidates were rejected. In both cases an error is
// returned and n holds the next untested candidate.
func (t *Tester) NextLikelyPrime(ctx context.Context, n natural.Nat) error {
	if n.CmpUint64(1) <= 0 {
		panic(fmt.Sprintf("primes: next prime search requires n > 1, got %s", n))
	}

	start := n.String()
	for tested := 0; ; tested++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("searching next likely prime from %s, stopped at %s: %w", start, n, err)
		}
		if t.maxCandidates > 0 && tested >= t.maxCandidates {
			return fmt.Errorf("searching next likely prime from %s, stopped at %s: %w", start, n, ErrSearchExhausted)
		}

		t.metrics.searchCandidates.Inc()
		t.logger.Trace("testing candidate", commontypes.LogFields{"candidate": n.String()})
		if t.IsPrimeMultiWitness(n) {
			t.logger.Debug("found likely prime", commontypes.LogFields{
				"start":   start,
				"prime":   n.String(),
				"tested":  tested + 1,
				"trials":  t.trials,
				"verdict": t.policy.String(),
			})
			return nil
		}

		if n.IsEven() {
			n.Increment()
		} else {
			n.Add(two)
		}
	}
}
