package metrics

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	probeStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "probe",
		Name:      "stage_total",
		Help:      "Count of probe pipeline stages by outcome.",
	}, []string{"stage", "network", "status"})

	probeStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "probe",
		Name:      "stage_duration_seconds",
		Help:      "Duration of probe pipeline stages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "network", "status"})

	probeOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "probe",
		Name:      "outcome_total",
		Help:      "Count of probes by submission status and daemon code.",
	}, []string{"network", "status", "code"})

	probeTxSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "probe",
		Name:      "tx_size_bytes",
		Help:      "Encoded size of mutated transactions.",
		Buckets:   prometheus.ExponentialBuckets(64, 2, 12), // 64..131072
	}, []string{"network"})
)

// Probe tracks metrics for the mutation pipeline.
type Probe struct {
	network string
}

// NewProbe constructs a Probe collector.
func NewProbe(network model.Network) *Probe {
	return &Probe{network: networkLabel(network)}
}

// ObserveStage records one pipeline stage.
func (m Probe) ObserveStage(stage string, err error, started time.Time) {
	s := status(err)
	probeStageTotal.WithLabelValues(stage, m.network, s).Inc()
	probeStageDuration.WithLabelValues(stage, m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveOutcome records the final status of a probe and the size of the
// transaction it produced.
func (m Probe) ObserveOutcome(sub model.Submission) {
	probeOutcomeTotal.WithLabelValues(m.network, string(sub.Status), strconv.Itoa(int(sub.Code))).Inc()
	probeTxSize.WithLabelValues(m.network).Observe(float64(len(sub.RawTx) / 2))
}
