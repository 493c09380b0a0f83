package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/THScholar/Therra-Ai-Platform/docs"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	infraai "github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/ai"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/metrics"
	infrapdf "github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/pdf"
	infraredis "github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/redis"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/storage"
	httpRouter "github.com/THScholar/Therra-Ai-Platform/internal/interfaces/http"
	"github.com/THScholar/Therra-Ai-Platform/pkg/config"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	m := metrics.New(cfg.Metrics.Namespace)

	// Limitador de login: solo con REDIS_ADDR
	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		rdb := infraredis.NewClient(cfg.Redis)
		defer rdb.Close()
		if err := infraredis.Ping(ctx, rdb); err != nil {
			log.Warn().Err(err).Msg("redis no disponible; el limitador no bloqueará hasta que responda")
		}
		limiter = infraredis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window(), log)
	}

	adminHash := cfg.Admin.PasswordHash
	if adminHash == "" {
		adminHash, err = auth.HashAdminPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de ADMIN_PASSWORD")
		}
	}
	authUC := auth.NewAuthUseCase(store.Tx, store.Licenses, limiter, adminHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	llm, err := infraai.NewFromConfig(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de IA")
	}
	chatUC := usecase.NewChatUseCase(m.InstrumentLLM(llm), store.TherraLogs, cfg.AI.Timeout(), log)

	analyticsUC := usecase.NewAnalyticsUseCase(store.Analytics, store.Sales, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code, msg = fe.Code, fe.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Therra API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": store.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		LicenseUC:   usecase.NewLicenseUseCase(store.Licenses),
		ProductUC:   usecase.NewProductUseCase(store.Products),
		OrderUC:     orders.NewOrderUseCase(store.Tx, store.Orders),
		AnalyticsUC: analyticsUC,
		BotLogUC:    usecase.NewBotLogUseCase(store.BotLogs),
		ChatUC:      chatUC,
		LoginObs:    m,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
