package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/memory"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/pdf"
	apphttp "github.com/THScholar/Therra-Ai-Platform/internal/interfaces/http"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

const adminPassword = "rahasia-admin"

type apiClient struct {
	t   *testing.T
	app *fiber.App
}

// newAPI arma la app completa sobre el store en memoria y sin proveedor de IA.
func newAPI(t *testing.T) *apiClient {
	t.Helper()
	store := memory.NewStore()
	hash, err := auth.HashAdminPassword(adminPassword)
	require.NoError(t, err)

	tx := memory.NewTxRunner(store)
	licenses := memory.NewLicenseRepository(store)
	authUC := auth.NewAuthUseCase(tx, licenses, nil, hash, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		LicenseUC: usecase.NewLicenseUseCase(licenses),
		ProductUC: usecase.NewProductUseCase(memory.NewProductRepository(store)),
		OrderUC:   orders.NewOrderUseCase(tx, memory.NewOrderRepository(store)),
		AnalyticsUC: usecase.NewAnalyticsUseCase(
			memory.NewAnalyticsRepository(store),
			memory.NewSalesRepository(store),
			pdf.NewMarotoReportGenerator(),
		),
		BotLogUC:  usecase.NewBotLogUseCase(memory.NewBotLogRepository(store)),
		ChatUC:    usecase.NewChatUseCase(nil, memory.NewTherraLogRepository(store), 0, logger.Nop()),
		JWTSecret: testJWTSecret,
		Logger:    logger.Nop(),
	})
	return &apiClient{t: t, app: app}
}

// call envía body como JSON y decodifica la respuesta en out (si no es nil).
func (a *apiClient) call(method, path, token string, body any, out any) int {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(a.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (a *apiClient) adminToken() string {
	a.t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	status := a.call(http.MethodPost, "/api/auth/admin-login", "", map[string]string{"password": adminPassword}, &out)
	require.Equal(a.t, http.StatusOK, status)
	return out.Token
}

func (a *apiClient) createLicense(adminTok string, body map[string]any) (id, code string) {
	a.t.Helper()
	var out struct {
		License struct {
			ID          string `json:"id"`
			LicenseCode string `json:"license_code"`
		} `json:"license"`
	}
	status := a.call(http.MethodPost, "/api/licenses", adminTok, body, &out)
	require.Equal(a.t, http.StatusOK, status)
	return out.License.ID, out.License.LicenseCode
}

func (a *apiClient) merchantLogin(code, device string) (int, string) {
	a.t.Helper()
	var out struct {
		Token string `json:"token"`
		Error string `json:"error"`
	}
	status := a.call(http.MethodPost, "/api/auth/umkm-login", "", map[string]string{"licenseCode": code, "deviceId": device}, &out)
	return status, out.Token
}

type errBody struct {
	Error string `json:"error"`
}

func TestRouter_AdminLogin(t *testing.T) {
	api := newAPI(t)
	var e errBody
	assert.Equal(t, http.StatusUnauthorized, api.call(http.MethodPost, "/api/auth/admin-login", "", map[string]string{"password": "salah"}, &e))
	assert.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, "/api/auth/admin-login", "", map[string]string{}, &e))
	assert.Equal(t, "Password required", e.Error)
	assert.NotEmpty(t, api.adminToken())
}

func TestRouter_FlujoDeLicencia(t *testing.T) {
	api := newAPI(t)
	adminTok := api.adminToken()

	var e errBody
	require.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, "/api/licenses", adminTok, map[string]any{"businessName": " "}, &e))
	assert.Equal(t, "Business name required", e.Error)

	id, code := api.createLicense(adminTok, map[string]any{"businessName": "Warung Sari", "maxDevices": 1})
	assert.Regexp(t, `^UMKM-\d+-[0-9A-Z]{6}$`, code)

	status, tok := api.merchantLogin(code, "device-a")
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, tok)

	status, _ = api.merchantLogin(code, "device-b")
	assert.Equal(t, http.StatusForbidden, status, "segundo dispositivo sin cupo")

	status, _ = api.merchantLogin("UMKM-0-NOPE00", "device-a")
	assert.Equal(t, http.StatusNotFound, status)

	// el comercio no accede a la consola
	assert.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/licenses", tok, nil, nil))

	var list struct {
		Licenses []struct {
			Status      string   `json:"status"`
			Devices     []string `json:"devices"`
			DeviceCount int      `json:"device_count"`
		} `json:"licenses"`
		Stats struct {
			Total    int `json:"total"`
			Active   int `json:"active"`
			Inactive int `json:"inactive"`
		} `json:"stats"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/licenses", adminTok, nil, &list))
	require.Len(t, list.Licenses, 1)
	assert.Equal(t, "active", list.Licenses[0].Status)
	assert.Equal(t, []string{"device-a"}, list.Licenses[0].Devices)
	assert.Equal(t, 1, list.Stats.Active)

	// reset-devices libera el cupo e invalida la sesión existente
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/licenses/reset-devices", adminTok, map[string]string{"licenseId": id}, nil))
	assert.Equal(t, http.StatusUnauthorized, api.call(http.MethodGet, "/api/products", tok, nil, nil))
	status, tokB := api.merchantLogin(code, "device-b")
	require.Equal(t, http.StatusOK, status)

	// desactivar corta la sesión vigente
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/licenses/update", adminTok, map[string]any{"licenseId": id, "isActive": false}, nil))
	require.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/products", tokB, nil, &e))
	assert.Equal(t, "License is inactive", e.Error)

	var ok struct {
		Success bool `json:"success"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/licenses/delete", adminTok, map[string]string{"licenseId": id}, &ok))
	assert.True(t, ok.Success)
	require.Equal(t, http.StatusNotFound, api.call(http.MethodPost, "/api/licenses/delete", adminTok, map[string]string{"licenseId": id}, &e))
	assert.Equal(t, "License not found", e.Error)
}

func TestRouter_PedidosYAnalitica(t *testing.T) {
	api := newAPI(t)
	_, code := api.createLicense(api.adminToken(), map[string]any{"businessName": "Toko Maju"})
	_, tok := api.merchantLogin(code, "device-a")
	require.NotEmpty(t, tok)

	var created struct {
		Product struct {
			ID    string `json:"id"`
			Stock int    `json:"stock"`
		} `json:"product"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/products", tok,
		map[string]any{"name": "Kopi Susu", "price": 15000, "stock": 10}, &created))
	productID := created.Product.ID

	var placed struct {
		Order struct {
			Status  string `json:"status"`
			Channel string `json:"channel"`
		} `json:"order"`
		Product struct {
			Stock int `json:"stock"`
		} `json:"product"`
		SalesRecord struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"salesRecord"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/orders/insert", tok, map[string]any{
		"customerName": "Budi", "productId": productID, "quantity": 3, "totalAmount": 45000,
	}, &placed))
	assert.Equal(t, "pending", placed.Order.Status)
	assert.Equal(t, "web", placed.Order.Channel)
	assert.Equal(t, 7, placed.Product.Stock)
	assert.Equal(t, "income", placed.SalesRecord.Type)
	assert.Equal(t, "Order from Budi", placed.SalesRecord.Description)

	var e errBody
	require.Equal(t, http.StatusConflict, api.call(http.MethodPost, "/api/orders/insert", tok, map[string]any{
		"customerName": "Ani", "productId": productID, "quantity": 100, "totalAmount": 1500000,
	}, &e))
	assert.Equal(t, "Insufficient stock", e.Error)

	var products struct {
		Products []struct {
			Stock int `json:"stock"`
		} `json:"products"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/products", tok, nil, &products))
	require.Len(t, products.Products, 1)
	assert.Equal(t, 7, products.Products[0].Stock, "el pedido rechazado no descuenta stock")

	var list struct {
		Orders []struct {
			ID          string `json:"id"`
			ProductName string `json:"product_name"`
		} `json:"orders"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/orders?limit=10", tok, nil, &list))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "Kopi Susu", list.Orders[0].ProductName)

	require.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, "/api/orders/update", tok,
		map[string]string{"orderId": list.Orders[0].ID, "status": "shipped"}, &e))
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/orders/update", tok,
		map[string]string{"orderId": list.Orders[0].ID, "status": "completed"}, nil))

	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/analytics/add-expense", tok,
		map[string]any{"amount": 5000, "description": "Gula"}, nil))

	var overview struct {
		Summary struct {
			TotalIncome  string `json:"total_income"`
			TotalExpense string `json:"total_expense"`
			NetProfit    string `json:"net_profit"`
			TotalOrders  int    `json:"total_orders"`
		} `json:"summary"`
		DailyData []struct {
			Net string `json:"net"`
		} `json:"dailyData"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/analytics", tok, nil, &overview))
	assert.Equal(t, "45000", overview.Summary.TotalIncome)
	assert.Equal(t, "5000", overview.Summary.TotalExpense)
	assert.Equal(t, "40000", overview.Summary.NetProfit)
	assert.Equal(t, 1, overview.Summary.TotalOrders)
	require.Len(t, overview.DailyData, 1)
	assert.Equal(t, "40000", overview.DailyData[0].Net)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/report.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRouter_BotLogsYChat(t *testing.T) {
	api := newAPI(t)
	adminTok := api.adminToken()

	var e errBody
	require.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, "/api/bot/save-log", "", map[string]string{"customerMessage": "halo"}, &e))
	assert.Equal(t, "Customer message and bot response required", e.Error)

	var saved struct {
		Log struct {
			CustomerName string `json:"customer_name"`
			Channel      string `json:"channel"`
			Intent       string `json:"intent"`
		} `json:"log"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/bot/save-log", "",
		map[string]string{"customerMessage": "halo", "botResponse": "Halo kak!"}, &saved))
	assert.Equal(t, "Anonymous", saved.Log.CustomerName)
	assert.Equal(t, "whatsapp", saved.Log.Channel)
	assert.Equal(t, "general", saved.Log.Intent)

	assert.Equal(t, http.StatusUnauthorized, api.call(http.MethodGet, "/api/bot/save-log", "", nil, nil))
	var logs struct {
		Logs []json.RawMessage `json:"logs"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/bot/save-log?channel=whatsapp", adminTok, nil, &logs))
	assert.Len(t, logs.Logs, 1)
	require.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/bot/save-log?channel=telegram", adminTok, nil, &logs))
	assert.Empty(t, logs.Logs)

	require.Equal(t, http.StatusBadRequest, api.call(http.MethodPost, "/api/therra/chat", adminTok, map[string]string{"message": ""}, &e))
	assert.Equal(t, "Message required", e.Error)

	var chat struct {
		Response string `json:"response"`
	}
	require.Equal(t, http.StatusOK, api.call(http.MethodPost, "/api/therra/chat", adminTok, map[string]string{"message": "Apa kabar?"}, &chat))
	assert.Equal(t, usecase.FallbackMaintenance, chat.Response)
}

func TestRouter_CuerpoInvalido(t *testing.T) {
	api := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/umkm-login", bytes.NewReader([]byte("{no-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
