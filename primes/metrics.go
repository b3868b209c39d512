package primes

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "nnprime"

type metrics struct {
	samplerRestarts  prometheus.Counter
	witnessTrials    *prometheus.CounterVec
	searchCandidates prometheus.Counter
}

// newMetrics creates the collectors and registers them with r. A nil registerer leaves them unregistered. Collectors
// already registered by another Tester on the same registry are shared.
func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		samplerRestarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sampler_restarts_total",
			Help:      "Number of times uniform sampling discarded a partial candidate and started over.",
		}),
		witnessTrials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "witness_trials_total",
			Help:      "Number of randomized compositeness witness trials, by outcome.",
		}, []string{"outcome"}),
		searchCandidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "search_candidates_total",
			Help:      "Number of candidates tested while searching for the next likely prime.",
		}),
	}
	if r == nil {
		return m
	}
	m.samplerRestarts = register(r, m.samplerRestarts)
	m.witnessTrials = register(r, m.witnessTrials)
	m.searchCandidates = register(r, m.searchCandidates)
	return m
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) C {
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) observeTrial(witness bool) {
	if witness {
		m.witnessTrials.WithLabelValues("witness").Inc()
	} else {
		m.witnessTrials.WithLabelValues("no_witness").Inc()
	}
}
