package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя, чтобы сервис работал с выключенными метриками.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
	dbQueryDuration   *prometheus.HistogramVec

	bookingsCreated    *prometheus.CounterVec
	conflictsDetected  prometheus.Gauge
	remindersProcessed *prometheus.CounterVec
	emailsSent         *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: labels,
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: labels,
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database call latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"operation"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created by service type",
			ConstLabels: labels,
		}, []string{"service_type"}),
		conflictsDetected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_conflicts_detected",
			Help:        "Conflicting booking pairs found by the last admin scan",
			ConstLabels: labels,
		}),
		remindersProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_processed_total",
			Help:        "Processed customer reminders by resulting status",
			ConstLabels: labels,
		}, []string{"status"}),
		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "emails_sent_total",
			Help:        "Outbound emails by kind and result",
			ConstLabels: labels,
		}, []string{"kind", "status"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.dbQueryDuration,
		m.bookingsCreated,
		m.conflictsDetected,
		m.remindersProcessed,
		m.emailsSent,
	)
	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SetDBPoolStats обновляет показатели пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUse.Set(float64(inUse))
	m.dbIdle.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

// ObserveDBCall фиксирует длительность обращения к БД
func (m *Metrics) ObserveDBCall(operation string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) IncBookingCreated(serviceType string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(serviceType).Inc()
}

func (m *Metrics) SetConflictsDetected(n int) {
	if m == nil {
		return
	}
	m.conflictsDetected.Set(float64(n))
}

func (m *Metrics) IncReminderProcessed(status string) {
	if m == nil {
		return
	}
	m.remindersProcessed.WithLabelValues(status).Inc()
}

func (m *Metrics) IncEmail(kind string, ok bool) {
	if m == nil {
		return
	}
	status := "sent"
	if !ok {
		status = "failed"
	}
	m.emailsSent.WithLabelValues(kind, status).Inc()
}
