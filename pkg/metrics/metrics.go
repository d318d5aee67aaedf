// Package metrics exports notification subscription metrics to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lintwatch/notify-go/pkg/notification"
)

const namespace = "notify"

// Transport call results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder is a notification.Recorder backed by Prometheus collectors.
type Recorder struct {
	open  prometheus.Gauge
	calls *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		open: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "subscriptions_open",
			Help:      "Number of open transport subscriptions (one per remote project).",
		}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_calls_total",
			Help:      "Transport subscribe/unsubscribe calls by outcome.",
		}, []string{"op", "result"}),
	}

	for _, c := range []prometheus.Collector{r.open, r.calls} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SetOpen sets the open subscriptions gauge.
func (r *Recorder) SetOpen(n int) {
	r.open.Set(float64(n))
}

// TransportCall counts a transport call.
func (r *Recorder) TransportCall(op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.calls.WithLabelValues(op, result).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Compile-time interface satisfaction check.
var _ notification.Recorder = (*Recorder)(nil)
