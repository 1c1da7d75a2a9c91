// Package metrics records scenario outcomes in a private prometheus registry
// that can be written out for the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values
const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
)

// Recorder holds the run metrics
type Recorder struct {
	Runs            *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
	LastRun         prometheus.Gauge
	LastRunFailures prometheus.Gauge
	registry        *prometheus.Registry
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saucecheck_scenario_runs_total",
				Help: "Total number of scenario runs by outcome",
			},
			[]string{"scenario", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "saucecheck_scenario_duration_seconds",
				Help:    "Scenario wall clock duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
			[]string{"scenario"},
		),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "saucecheck_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
		LastRunFailures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "saucecheck_last_run_failed_scenarios",
			Help: "Number of scenarios that failed in the last run",
		}),
		registry: registry,
	}

	registry.MustRegister(r.Runs, r.Duration, r.LastRun, r.LastRunFailures)
	return r
}

// Observe records one finished scenario
func (r *Recorder) Observe(scenario string, passed bool, d time.Duration) {
	outcome := OutcomePassed
	if !passed {
		outcome = OutcomeFailed
	}
	r.Runs.WithLabelValues(scenario, outcome).Inc()
	r.Duration.WithLabelValues(scenario).Observe(d.Seconds())
}

// RunFinished stamps the end of a run
func (r *Recorder) RunFinished(at time.Time, failures int) {
	r.LastRun.Set(float64(at.Unix()))
	r.LastRunFailures.Set(float64(failures))
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric to path in the text exposition format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
