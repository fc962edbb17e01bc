// Package metrics provides Prometheus metrics for the assessment engine.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Assessment metrics
	reportsGenerated   *prometheus.CounterVec
	scoringErrors      *prometheus.CounterVec
	generationLatency  *prometheus.HistogramVec
	answersResolved    prometheus.Counter
	answersOverwritten prometheus.Counter
	attemptsDuplicate  prometheus.Counter
	reportsStored      prometheus.Gauge

	// Queue metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueued      prometheus.Counter
	queueDequeued      prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Worker metrics
	workerCount             prometheus.Gauge
	workerProcessed         prometheus.Counter
	workerErrors            prometheus.Counter
	workerProcessingLatency prometheus.Histogram

	errorsByComponent *prometheus.CounterVec
}

// instance pairs the global manager with the registry it registers on so
// both are swapped together.
type instance struct {
	manager  *Manager
	registry *prometheus.Registry
}

// Global metrics manager instance; readers may run concurrently with Init.
var active atomic.Pointer[instance] //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	Init()
}

// Init replaces the global manager with one built from opts on a fresh
// custom registry, which keeps default Go metrics out. Recorders running
// concurrently keep writing to the previous manager until the swap.
func Init(opts ...Option) {
	reg := prometheus.NewRegistry()
	m := NewManager(append([]Option{WithPrometheusRegistry(reg)}, opts...)...)
	active.Store(&instance{manager: m, registry: reg})
}

func current() *Manager {
	return active.Load().manager
}

// NewManager creates a metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "spikefactor",
		subsystem:        "engine",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "reports_generated_total",
		Help:        "Total number of reports generated by product",
		ConstLabels: m.constLabels,
	}, []string{"product"})

	m.scoringErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "scoring_errors_total",
		Help:        "Total number of rejected answer sets by product and error kind",
		ConstLabels: m.constLabels,
	}, []string{"product", "kind"})

	m.generationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "generation_latency_milliseconds",
		Help:        "Report generation latency in milliseconds by product",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"product"})

	m.answersResolved = m.counter("answers_resolved_total", "Total number of effective answers scored")
	m.answersOverwritten = m.counter("answers_overwritten_total", "Total number of answers discarded as resubmissions")
	m.attemptsDuplicate = m.counter("attempts_duplicate_total", "Total number of attempts submitted more than once")
	m.reportsStored = m.gauge("reports_stored", "Number of reports held by the report store")

	m.queueSize = m.gauge("queue_size", "Current number of attempts waiting for generation")
	m.queueCapacity = m.gauge("queue_capacity", "Maximum number of attempts the queue holds")
	m.queueUtilization = m.gauge("queue_utilization_ratio", "Queue size divided by capacity")
	m.queueEnqueued = m.counter("queue_enqueued_total", "Total number of attempts enqueued")
	m.queueDequeued = m.counter("queue_dequeued_total", "Total number of attempts dequeued")
	m.queueEnqueueErrors = m.counter("queue_enqueue_errors_total", "Total number of rejected enqueues")

	m.workerCount = m.gauge("worker_count", "Current number of running workers")
	m.workerProcessed = m.counter("worker_processed_total", "Total number of attempts processed by workers")
	m.workerErrors = m.counter("worker_errors_total", "Total number of attempts workers failed to process")
	m.workerProcessingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "worker_processing_latency_milliseconds",
		Help:        "Time a worker spends on one attempt in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_component_total",
		Help:        "Total number of errors by component and type",
		ConstLabels: m.constLabels,
	}, []string{"component", "error_type"})
}

// RecordReportGenerated counts a generated report of product.
func RecordReportGenerated(product string) {
	current().reportsGenerated.WithLabelValues(product).Inc()
}

// RecordScoringError counts a rejected answer set.
func RecordScoringError(product, kind string) {
	current().scoringErrors.WithLabelValues(product, kind).Inc()
}

// RecordGenerationLatency records generation latency in milliseconds.
func RecordGenerationLatency(product string, latencyMs float64) {
	current().generationLatency.WithLabelValues(product).Observe(latencyMs)
}

// RecordAnswers counts effective and overwritten answers of one attempt.
func RecordAnswers(resolved, overwritten int) {
	current().answersResolved.Add(float64(resolved))
	current().answersOverwritten.Add(float64(overwritten))
}

// RecordAttemptDuplicate counts a repeated attempt submission.
func RecordAttemptDuplicate() {
	current().attemptsDuplicate.Inc()
}

// UpdateReportsStored sets the number of stored reports.
func UpdateReportsStored(count int) {
	current().reportsStored.Set(float64(count))
}

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	current().queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the queue capacity.
func UpdateQueueCapacity(capacity int) {
	current().queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets queue size over capacity.
func UpdateQueueUtilization(utilization float64) {
	current().queueUtilization.Set(utilization)
}

// RecordQueueEnqueue counts an accepted enqueue.
func RecordQueueEnqueue() {
	current().queueEnqueued.Inc()
}

// RecordQueueDequeue counts a dequeue.
func RecordQueueDequeue() {
	current().queueDequeued.Inc()
}

// RecordQueueEnqueueError counts a rejected enqueue.
func RecordQueueEnqueueError() {
	current().queueEnqueueErrors.Inc()
}

// UpdateWorkerCount sets the number of running workers.
func UpdateWorkerCount(count int) {
	current().workerCount.Set(float64(count))
}

// RecordWorkerProcessed counts an attempt a worker finished.
func RecordWorkerProcessed() {
	current().workerProcessed.Inc()
}

// RecordWorkerError counts an attempt a worker failed.
func RecordWorkerError() {
	current().workerErrors.Inc()
}

// RecordWorkerProcessingLatency records per-attempt worker time in milliseconds.
func RecordWorkerProcessingLatency(latencyMs float64) {
	current().workerProcessingLatency.Observe(latencyMs)
}

// RecordErrorByComponent counts an error of errorType raised by component.
func RecordErrorByComponent(component, errorType string) {
	current().errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return active.Load().registry
}
