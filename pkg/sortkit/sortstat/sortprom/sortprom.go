// Package sortprom exports sorting reports as Prometheus metrics.
package sortprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"go.llib.dev/sorters/pkg/sortkit/sortstat"
)

const (
	namespace     = "sorters"
	strategyLabel = "strategy"
)

// Observer is a sortstat.Observer that aggregates reports into Prometheus collectors.
type Observer struct {
	Sorts       *prometheus.CounterVec
	Comparisons *prometheus.CounterVec
	Swaps       *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewObserver creates an Observer and registers its collectors.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		Sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sorts_total",
			Help:      "Number of sort calls per strategy.",
		}, []string{strategyLabel}),
		Comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Number of element comparisons per strategy.",
		}, []string{strategyLabel}),
		Swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Number of element swaps per strategy.",
		}, []string{strategyLabel}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sort_duration_seconds",
			Help:      "Duration of sort calls per strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12),
		}, []string{strategyLabel}),
	}
	for _, c := range []prometheus.Collector{o.Sorts, o.Comparisons, o.Swaps, o.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) ObserveSort(r sortstat.Report) {
	o.Sorts.WithLabelValues(r.Strategy).Inc()
	o.Comparisons.WithLabelValues(r.Strategy).Add(float64(r.Comparisons))
	o.Swaps.WithLabelValues(r.Strategy).Add(float64(r.Swaps))
	o.Duration.WithLabelValues(r.Strategy).Observe(r.Duration.Seconds())
}
