package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nav",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent answering a request",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nav",
			Name:      "http_requests_total",
			Help:      "Requests answered",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(requestDuration, requests)
}

// instrument counts and times every matched route by its path template.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		rec := &recorder{ResponseWriter: w}
		next.ServeHTTP(rec, req)

		delta := time.Since(start)
		path := routePath(req)
		status := strconv.Itoa(rec.status())

		requestDuration.WithLabelValues(req.Method, path, status).Observe(delta.Seconds())
		requests.WithLabelValues(req.Method, path, status).Inc()

		log.WithFields(log.Fields{
			"method": req.Method,
			"path":   path,
			"status": status,
		}).Debugf("Answered in %s", delta.String())
	})
}

func routePath(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unknown"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil || tpl == "" {
		return "unknown"
	}
	return tpl
}

// recorder keeps the first status sent. No WriteHeader means 200.
type recorder struct {
	http.ResponseWriter
	code int
}

func (r *recorder) WriteHeader(code int) {
	if r.code == 0 {
		r.code = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) status() int {
	if r.code == 0 {
		return http.StatusOK
	}
	return r.code
}
