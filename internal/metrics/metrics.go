// Package metrics exposes emission counters for the logging facility.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asandikci/strongswan/internal/logging"
)

var (
	messages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "charon_log_messages_total",
		Help: "Logical log messages emitted, by prefix group.",
	}, []string{"group"})

	dumps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charon_hexdumps_total",
		Help: "Hex dump bursts emitted.",
	})

	dumpBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charon_hexdump_bytes_total",
		Help: "Payload bytes rendered by hex dumps.",
	})
)

// Tap returns a logging tap that feeds the counters.
func Tap() logging.Tap {
	return func(e logging.Entry) {
		messages.WithLabelValues(e.Group).Inc()
		if e.Bytes > 0 {
			dumps.Inc()
			dumpBytes.Add(float64(e.Bytes))
		}
	}
}

// HTTPHandler returns the Prometheus metrics HTTP handler. It serves
// all promauto-registered metrics.
func HTTPHandler() http.Handler {
	return promhttp.Handler()
}
