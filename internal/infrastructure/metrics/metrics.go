// Package metrics expone los colectores Prometheus del servicio.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
)

// Metrics colectores usados por el servidor HTTP, el login y el chat.
type Metrics struct {
	registry      *prometheus.Registry
	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	LoginAttempts *prometheus.CounterVec
	AIRequests    *prometheus.CounterVec
	AILatency     *prometheus.HistogramVec
}

// New crea un registro propio (no el global) para poder instanciarlo en cada test.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by kind (license, admin) and outcome.",
		}, []string{"kind", "outcome"}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_requests_total",
			Help:      "Total AI provider requests by outcome.",
		}, []string{"status"}),
		AILatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_request_duration_seconds",
			Help:      "Latency distribution for AI provider calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPLatency,
		m.LoginAttempts,
		m.AIRequests,
		m.AILatency,
	)
	return m
}

// Registry devuelve el registro para tests o exportadores adicionales.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler sirve /metrics (net/http; en Fiber se monta con adaptor).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware registra conteo y latencia por ruta. Usa la plantilla de la ruta
// (/api/licenses/:id) para no crear una serie por id.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		if status == fiber.StatusNotFound && route == "/" {
			route = "unmatched"
		}
		method := c.Method()
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.HTTPLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObserveLogin clasifica el resultado de un intento de login.
func (m *Metrics) ObserveLogin(kind string, err error) {
	m.LoginAttempts.WithLabelValues(kind, loginOutcome(err)).Inc()
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnauthorized):
		return "rejected"
	case errors.Is(err, domain.ErrLicenseInactive), errors.Is(err, domain.ErrLicenseExpired):
		return "license_blocked"
	case errors.Is(err, domain.ErrDeviceLimitExceeded):
		return "device_limit"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

// InstrumentLLM envuelve el proveedor de IA con conteo y latencia por resultado.
func (m *Metrics) InstrumentLLM(next ports.LLMService) ports.LLMService {
	if next == nil {
		return nil
	}
	return &instrumentedLLM{next: next, m: m}
}

type instrumentedLLM struct {
	next ports.LLMService
	m    *Metrics
}

func (i *instrumentedLLM) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	start := time.Now()
	reply, err := i.next.Reply(ctx, systemPrompt, message)

	status := "success"
	switch {
	case errors.Is(err, ports.ErrLLMNotConfigured):
		status = "not_configured"
	case errors.Is(err, context.DeadlineExceeded):
		status = "timeout"
	case err != nil:
		status = "error"
	case reply == "":
		status = "empty"
	}
	i.m.AIRequests.WithLabelValues(status).Inc()
	i.m.AILatency.WithLabelValues(status).Observe(time.Since(start).Seconds())
	return reply, err
}
