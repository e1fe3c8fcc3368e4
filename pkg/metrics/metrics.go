package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// pollCycles tracks completed detector cycles by trigger source
	pollCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjw_detector_cycles_total",
			Help: "Total detector poll cycles by source (tick, rescan, trigger)",
		},
		[]string{"source"},
	)

	// pollErrors tracks adapter failures seen by the detector
	pollErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjw_detector_errors_total",
			Help: "Total detector adapter errors by call (list, query)",
		},
		[]string{"call"},
	)

	// pollDuration tracks the wall time of a poll cycle
	pollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sjw_detector_cycle_duration_seconds",
			Help:    "Duration of detector poll cycles",
			Buckets: prometheus.DefBuckets,
		},
	)

	// changesDetected tracks ChangeRecords emitted by the detector
	changesDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sjw_detector_changes_total",
			Help: "Total unit status changes detected",
		},
	)

	// unitsTracked tracks the number of units in the registry
	unitsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sjw_registry_units",
			Help: "Number of units known to the registry",
		},
	)

	// eventsPublished tracks events offered to subscribers
	eventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sjw_distributor_published_total",
			Help: "Total change events published",
		},
	)

	// eventsDropped tracks events dropped on full subscriber queues
	eventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sjw_distributor_dropped_total",
			Help: "Total events dropped because a subscriber queue was full",
		},
	)

	// subscribersEvicted tracks slow subscribers removed by the distributor
	subscribersEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sjw_distributor_evicted_total",
			Help: "Total subscribers evicted as slow consumers",
		},
	)

	// subscribersActive tracks live subscriptions
	subscribersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sjw_distributor_subscribers",
			Help: "Number of active subscriptions",
		},
	)

	// dispatchTotal tracks mutating operations by kind and outcome
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjw_dispatcher_operations_total",
			Help: "Total mutating operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// dispatchDuration tracks mutate latency
	dispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sjw_dispatcher_operation_duration_seconds",
			Help:    "Duration of mutating operations including the forced re-check",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// dispatchPending tracks units with an operation in flight
	dispatchPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sjw_dispatcher_pending_operations",
			Help: "Number of units with a pending operation",
		},
	)

	// rescansRequested tracks rescans requested by the unit directory watcher
	rescansRequested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjw_unitwatch_rescans_total",
			Help: "Total rescans requested by the unit directory watcher by outcome",
		},
		[]string{"outcome"},
	)

	// logStreams tracks open log streams
	logStreams = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sjw_logtail_streams",
			Help: "Number of open log streams by backend",
		},
		[]string{"backend"},
	)
)

// RecordCycle records a finished detector cycle
func RecordCycle(source string, duration time.Duration) {
	pollCycles.WithLabelValues(source).Inc()
	pollDuration.Observe(duration.Seconds())
}

// RecordPollError increments the detector error counter
func RecordPollError(call string) {
	pollErrors.WithLabelValues(call).Inc()
}

// RecordChange increments the detected change counter
func RecordChange() {
	changesDetected.Inc()
}

// SetUnitsTracked sets the registry size gauge
func SetUnitsTracked(n int) {
	unitsTracked.Set(float64(n))
}

// RecordPublished increments the published event counter
func RecordPublished() {
	eventsPublished.Inc()
}

// RecordDropped increments the dropped event counter
func RecordDropped() {
	eventsDropped.Inc()
}

// RecordEvicted increments the evicted subscriber counter
func RecordEvicted() {
	subscribersEvicted.Inc()
}

// AddSubscribers adjusts the active subscription gauge by delta
func AddSubscribers(delta int) {
	subscribersActive.Add(float64(delta))
}

// RecordDispatch records one mutating operation
func RecordDispatch(operation, result string, duration time.Duration) {
	dispatchTotal.WithLabelValues(operation, result).Inc()
	dispatchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AddPending adjusts the pending operation gauge by delta
func AddPending(delta int) {
	dispatchPending.Add(float64(delta))
}

// RecordRescan increments the unit directory rescan counter
func RecordRescan(outcome string) {
	rescansRequested.WithLabelValues(outcome).Inc()
}

// AddLogStreams adjusts the open log stream gauge by delta
func AddLogStreams(backend string, delta int) {
	logStreams.WithLabelValues(backend).Add(float64(delta))
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
