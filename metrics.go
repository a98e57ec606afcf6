package feedsync

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type syncMetrics struct {
	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	payloadBytes prometheus.Gauge
}

func newSyncMetrics(reg prometheus.Registerer) (*syncMetrics, error) {
	m := &syncMetrics{}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feedsync_runs_total",
		Help: "Total number of export runs by outcome",
	}, []string{"status"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, fmt.Errorf("failed to register runs metric: %v", err)
		}
	} else {
		m.runs = runs
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feedsync_run_duration_seconds",
		Help:    "Time taken by an export run",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, fmt.Errorf("failed to register duration metric: %v", err)
		}
	} else {
		m.duration = duration
	}

	payloadBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "feedsync_payload_bytes",
		Help: "Size of the last successfully exported feed payload",
	})

	if err := reg.Register(payloadBytes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.payloadBytes = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, fmt.Errorf("failed to register payload metric: %v", err)
		}
	} else {
		m.payloadBytes = payloadBytes
	}

	return m, nil
}
