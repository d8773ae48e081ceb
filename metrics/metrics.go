package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of one process. Passing a fresh registry
// keeps tests from colliding on the default one.
type Metrics struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	AuthAttemptsCounter *prometheus.CounterVec

	DbOperationDuration *prometheus.HistogramVec

	OrderOperationsCounter *prometheus.CounterVec
	RoomStatusCounter      *prometheus.CounterVec
	KitchenClientsGauge    prometheus.Gauge
}

func New(prefix string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HttpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuthAttemptsCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		DbOperationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		),
		OrderOperationsCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_order_operations_total",
				Help: "Order operations by kind",
			},
			[]string{"operation"},
		),
		RoomStatusCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_room_status_changes_total",
				Help: "Room status changes by target status",
			},
			[]string{"status"},
		),
		KitchenClientsGauge: f.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_kitchen_ws_clients",
				Help: "Connected kitchen board websocket clients",
			},
		),
	}
}

// TrackDBOperation returns a function that records the duration of a database operation
func (m *Metrics) TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if m == nil {
			return
		}
		m.DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

func (m *Metrics) RecordAuthAttempt(result string) {
	if m == nil {
		return
	}
	m.AuthAttemptsCounter.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordOrderOperation(operation string) {
	if m == nil {
		return
	}
	m.OrderOperationsCounter.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordRoomStatus(status string) {
	if m == nil {
		return
	}
	m.RoomStatusCounter.WithLabelValues(status).Inc()
}
