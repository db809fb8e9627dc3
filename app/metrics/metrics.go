package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "investor_subscriptions"

// Collector owns a private Prometheus registry with the service metrics.
type Collector struct {
	registry *prometheus.Registry

	Operations          *prometheus.CounterVec
	GateChecks          *prometheus.CounterVec
	PaymentCharges      *prometheus.CounterVec
	ExpiredReconciled   prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GRPCRequestsTotal   *prometheus.CounterVec
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Subscription operations by outcome",
		}, []string{"operation", "outcome"}),
		GateChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_checks_total",
			Help:      "Access gate decisions by result and source",
		}, []string{"result", "source"}),
		PaymentCharges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_charges_total",
			Help:      "Payment authority charges by result",
		}, []string{"result"}),
		ExpiredReconciled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_reconciled_total",
			Help:      "Investors whose stale subscription flag was cleared",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		GRPCRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Total number of unary gRPC requests",
		}, []string{"method", "code"}),
	}

	reg.MustRegister(
		c.Operations,
		c.GateChecks,
		c.PaymentCharges,
		c.ExpiredReconciled,
		c.HTTPRequestsTotal,
		c.HTTPRequestDuration,
		c.GRPCRequestsTotal,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveOperation(operation, outcome string) {
	c.Operations.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) ObserveGateCheck(result, source string) {
	c.GateChecks.WithLabelValues(result, source).Inc()
}

func (c *Collector) ObservePayment(result string) {
	c.PaymentCharges.WithLabelValues(result).Inc()
}

func (c *Collector) ObserveExpired(count int) {
	c.ExpiredReconciled.Add(float64(count))
}

func (c *Collector) ObserveGRPCRequest(method, code string) {
	c.GRPCRequestsTotal.WithLabelValues(method, code).Inc()
}

// EchoMiddleware records request counts and latency keyed by route pattern.
func (c *Collector) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			method := ctx.Request().Method
			c.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			c.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
