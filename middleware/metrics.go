package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the site
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	pageViewsTotal      *prometheus.CounterVec
	dialogOpensTotal    prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a fresh registry
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"}, // route: registered path, "unmatched" for 404s
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Time taken for HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		pageViewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_page_views_total",
				Help: "Rendered pages by name",
			},
			[]string{"page"}, // page: landing, not_found
		),
		dialogOpensTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "site_submission_dialog_opens_total",
				Help: "Landing page renders with the recipe submission dialog open",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.pageViewsTotal,
		m.dialogOpensTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPageView counts a rendered page. A nil receiver is a no-op so
// handlers work with metrics disabled.
func (m *Metrics) RecordPageView(page string) {
	if m == nil {
		return
	}
	m.pageViewsTotal.WithLabelValues(page).Inc()
}

// RecordDialogOpen counts a render with the submission dialog visible
func (m *Metrics) RecordDialogOpen() {
	if m == nil {
		return
	}
	m.dialogOpensTotal.Inc()
}

// Middleware records request counts and latencies
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			method := c.Request().Method
			m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
