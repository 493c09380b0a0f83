package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	apphttp "github.com/THScholar/Therra-Ai-Platform/internal/interfaces/http"
	pkgjwt "github.com/THScholar/Therra-Ai-Platform/pkg/jwt"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testLicenseID = "00000000-0000-0000-0000-000000000001"
	testDeviceID  = "device-1700000000000-abc"
	testIssuer    = "therra-test"
	testExpMin    = 60
)

// verifierFunc adapta una función a SessionVerifier.
type verifierFunc func(ctx context.Context, licenseID, deviceID string) error

func (f verifierFunc) VerifySession(ctx context.Context, licenseID, deviceID string) error {
	return f(ctx, licenseID, deviceID)
}

var allowAll = verifierFunc(func(context.Context, string, string) error { return nil })

// buildTestApp app mínima con JWT + licencia vigente + RBAC y un handler que devuelve la sesión.
func buildTestApp(verifier apphttp.SessionVerifier, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireActiveLicense(verifier, logger.Nop()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"license_id": apphttp.GetLicenseID(c),
				"device_id":  apphttp.GetDeviceID(c),
				"role":       apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	licenseID, deviceID := testLicenseID, testDeviceID
	if role == "admin" {
		licenseID, deviceID = "", ""
	}
	tok, err := pkgjwt.Generate(testJWTSecret, "sub", licenseID, deviceID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := buildTestApp(allowAll, "umkm", "admin")
	resp := doRequest(t, app, tokenForRole(t, "umkm"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testLicenseID, body["license_id"])
	assert.Equal(t, testDeviceID, body["device_id"])
	assert.Equal(t, "umkm", body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(allowAll, "admin"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authorization header required", errorBody(t, resp))
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(allowAll, "admin"), "Token abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(allowAll, "admin"), "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenSinRol_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "sub", testLicenseID, testDeviceID, "", testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, buildTestApp(allowAll, "admin"), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_UMKMBloqueadoEnRutaAdmin(t *testing.T) {
	resp := doRequest(t, buildTestApp(allowAll, "admin"), tokenForRole(t, "umkm"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Forbidden"}`, string(body))
}

func TestRequireActiveLicense_AdminNoConsulta(t *testing.T) {
	called := false
	verifier := verifierFunc(func(context.Context, string, string) error {
		called = true
		return domain.ErrUnauthorized
	})
	resp := doRequest(t, buildTestApp(verifier, "admin"), tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, called)
}

func TestRequireActiveLicense_EstadoActualDeLaLicencia(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"desactivada", domain.ErrLicenseInactive, http.StatusForbidden},
		{"vencida", domain.ErrLicenseExpired, http.StatusForbidden},
		{"borrada o dispositivo desvinculado", domain.ErrUnauthorized, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotLicense, gotDevice string
			verifier := verifierFunc(func(_ context.Context, licenseID, deviceID string) error {
				gotLicense, gotDevice = licenseID, deviceID
				return tc.err
			})
			resp := doRequest(t, buildTestApp(verifier, "umkm", "admin"), tokenForRole(t, "umkm"))
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, testLicenseID, gotLicense)
			assert.Equal(t, testDeviceID, gotDevice)
		})
	}
}
