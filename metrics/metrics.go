package metrics

import (
	// External Packages
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts applied and rejected events per transaction kind. There
// is no exposition endpoint here; whoever embeds the engine decides how
// to gather the registry.
type Metrics struct {
	Processed *prometheus.CounterVec
	Rejected  *prometheus.CounterVec
}

// New registers the counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Processed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "txledger",
				Name:      "events_processed_total",
				Help:      "Total number of events applied to the ledger",
			},
			[]string{"kind"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "txledger",
				Name:      "events_rejected_total",
				Help:      "Total number of events dropped by the processor",
			},
			[]string{"kind", "reason"},
		),
	}
	reg.MustRegister(m.Processed, m.Rejected)
	return m
}
