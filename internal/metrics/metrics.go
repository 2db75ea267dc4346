// Package metrics provides the centralized Prometheus registry for the
// simulation library.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run method and status label values.
const (
	MethodSimple      = "simple"
	MethodMonteCarlo  = "monte_carlo"
	MethodWalkForward = "walk_forward"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keiba_backtest",
		Name:      "simulation_runs_total",
		Help:      "Total number of simulation runs by method and status",
	}, []string{"method", "status"})
	BetsSimulatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keiba_backtest",
		Name:      "bets_simulated_total",
		Help:      "Total number of bets settled across all runs",
	})
	MonteCarloTrialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keiba_backtest",
		Name:      "monte_carlo_trials_total",
		Help:      "Total number of Monte Carlo trials executed",
	})
)

// Histogram metrics
var (
	SimulationROI = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "keiba_backtest",
		Name:      "simulation_roi_percent",
		Help:      "ROI of finished simulation runs in percent",
		Buckets:   []float64{0, 25, 50, 75, 90, 100, 110, 125, 150, 200, 300},
	})
)

// InitRegistry creates and populates the registry exactly once.
func InitRegistry() {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			SimulationRunsTotal,
			BetsSimulatedTotal,
			MonteCarloTrialsTotal,
			SimulationROI,
		)
	})
}

// GetRegistry returns the registry, initializing it if needed.
func GetRegistry() *prometheus.Registry {
	InitRegistry()
	return registry
}

// Handler returns an HTTP handler exposing the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulationRun records a finished run.
func RecordSimulationRun(method, status string) {
	SimulationRunsTotal.WithLabelValues(method, status).Inc()
}

// RecordBetsSimulated adds the number of bets a run settled.
func RecordBetsSimulated(count int) {
	BetsSimulatedTotal.Add(float64(count))
}

// RecordMonteCarloTrials adds finished Monte Carlo trials.
func RecordMonteCarloTrials(count int) {
	MonteCarloTrialsTotal.Add(float64(count))
}

// ObserveROI records the ROI of a finished run.
func ObserveROI(roi float64) {
	SimulationROI.Observe(roi)
}
