package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LicenseUC   *usecase.LicenseUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *orders.OrderUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	BotLogUC    *usecase.BotLogUseCase
	ChatUC      *usecase.ChatUseCase
	LoginObs    LoginObserver // opcional
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.LoginObs, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/umkm-login", authHandler.LicenseLogin)
	authGroup.Post("/admin-login", authHandler.AdminLogin)

	// Los bots externos escriben sin token
	botHandler := NewBotHandler(deps.BotLogUC, log)
	api.Post("/bot/save-log", botHandler.SaveLog)

	// Rutas protegidas: token válido + licencia vigente para sesiones umkm
	authn := AuthMiddleware(deps.JWTSecret)
	active := RequireActiveLicense(deps.AuthUC, log)
	anyRole := RequireRole(entity.RoleUMKM, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Licenses (solo admin)
	licenseHandler := NewLicenseHandler(deps.LicenseUC, log)
	licenses := api.Group("/licenses", authn, active, adminOnly)
	licenses.Get("/", licenseHandler.List)
	licenses.Post("/", licenseHandler.Create)
	licenses.Post("/update", licenseHandler.Update)
	licenses.Post("/delete", licenseHandler.Delete)
	licenses.Post("/reset-devices", licenseHandler.ResetDevices)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, log)
	products := api.Group("/products", authn, active, anyRole)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/update-stock", productHandler.UpdateStock)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC, log)
	orderGroup := api.Group("/orders", authn, active, anyRole)
	orderGroup.Get("/", orderHandler.List)
	orderGroup.Post("/insert", orderHandler.Insert)
	orderGroup.Post("/update", orderHandler.UpdateStatus)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, log)
	analytics := api.Group("/analytics", authn, active, anyRole)
	analytics.Get("/", analyticsHandler.Overview)
	analytics.Get("/report.pdf", analyticsHandler.ReportPDF)
	analytics.Post("/add-expense", analyticsHandler.AddExpense)

	// Bot logs (lectura protegida)
	api.Get("/bot/save-log", authn, active, anyRole, botHandler.ListLogs)

	// Therra AI
	chatHandler := NewChatHandler(deps.ChatUC, log)
	api.Post("/therra/chat", authn, active, anyRole, chatHandler.Chat)
}
