// Package storage elige el backend de persistencia según DB_DRIVER y expone
// los repositorios como puertos del dominio.
package storage

import (
	"context"
	"fmt"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/memory"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/postgres"
	"github.com/THScholar/Therra-Ai-Platform/migrations"
	"github.com/THScholar/Therra-Ai-Platform/pkg/config"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// TxRunner transacciones de login (licencia + dispositivos) y de ingreso de pedidos.
type TxRunner interface {
	auth.LicenseTxRunner
	orders.TxRunner
}

// Storage repositorios de un backend. Close libera conexiones.
type Storage struct {
	Driver     string
	Tx         TxRunner
	Licenses   repository.LicenseRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Sales      repository.SalesRepository
	Analytics  repository.AnalyticsRepository
	BotLogs    repository.BotLogRepository
	TherraLogs repository.TherraLogRepository
	Ping       func(ctx context.Context) error
	Close      func()
}

// Open abre el backend configurado. Con postgres aplica migraciones si DB_AUTO_MIGRATE.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	switch cfg.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		return Memory(memory.NewStore()), nil
	case "", "postgres":
		return openPostgres(ctx, cfg, log)
	}
	return nil, fmt.Errorf("storage: DB_DRIVER desconocido %q", cfg.Driver)
}

// Memory arma el backend en memoria sobre un store dado.
func Memory(store *memory.Store) *Storage {
	return &Storage{
		Driver:     "memory",
		Tx:         memory.NewTxRunner(store),
		Licenses:   memory.NewLicenseRepository(store),
		Products:   memory.NewProductRepository(store),
		Orders:     memory.NewOrderRepository(store),
		Sales:      memory.NewSalesRepository(store),
		Analytics:  memory.NewAnalyticsRepository(store),
		BotLogs:    memory.NewBotLogRepository(store),
		TherraLogs: memory.NewTherraLogRepository(store),
		Ping:       func(context.Context) error { return nil },
		Close:      func() {},
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, pool, migrations.Files, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &Storage{
		Driver:     "postgres",
		Tx:         postgres.NewTxRunner(pool),
		Licenses:   postgres.NewLicenseRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Orders:     postgres.NewOrderRepository(pool),
		Sales:      postgres.NewSalesRepository(pool),
		Analytics:  postgres.NewAnalyticsRepository(pool),
		BotLogs:    postgres.NewBotLogRepository(pool),
		TherraLogs: postgres.NewTherraLogRepository(pool),
		Ping:       pool.Ping,
		Close:      pool.Close,
	}, nil
}
