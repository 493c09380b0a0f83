package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
)

func TestMiddleware_CuentaPorPlantillaDeRuta(t *testing.T) {
	m := New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/licenses/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/licenses/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/licenses/:id", "204")))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "test_http_requests_total"))
}

func TestObserveLogin(t *testing.T) {
	m := New("test")
	m.ObserveLogin("license", nil)
	m.ObserveLogin("license", fmt.Errorf("login: %w", domain.ErrLicenseExpired))
	m.ObserveLogin("license", domain.Invalid("License code and device ID required"))
	m.ObserveLogin("admin", domain.ErrUnauthorized)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("license", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("license", "license_blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("license", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("admin", "rejected")))
}

type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) Reply(context.Context, string, string) (string, error) { return s.reply, s.err }

func TestInstrumentLLM(t *testing.T) {
	m := New("test")
	ctx := context.Background()

	_, _ = m.InstrumentLLM(stubLLM{reply: "halo"}).Reply(ctx, "sys", "hi")
	_, _ = m.InstrumentLLM(stubLLM{}).Reply(ctx, "sys", "hi")
	_, _ = m.InstrumentLLM(stubLLM{err: ports.ErrLLMNotConfigured}).Reply(ctx, "sys", "hi")
	_, err := m.InstrumentLLM(stubLLM{err: errors.New("502")}).Reply(ctx, "sys", "hi")
	require.Error(t, err, "el error del proveedor se propaga sin cambios")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues("not_configured")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AIRequests.WithLabelValues("error")))
	assert.Nil(t, m.InstrumentLLM(nil))
}
