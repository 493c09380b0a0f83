// seed crea datos de demostración: una licencia activa y un catálogo inicial de productos.
//
// Uso: go run ./cmd/seed [nombre del comercio]
// Lee la misma configuración que la API (DATABASE_URL / DB_*); aplica migraciones si DB_AUTO_MIGRATE.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/storage"
	"github.com/THScholar/Therra-Ai-Platform/pkg/config"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

type seedProduct struct {
	name     string
	price    string
	stock    int
	category string
}

var catalog = []seedProduct{
	{"Kopi Susu Gula Aren", "18000", 50, "Minuman"},
	{"Es Teh Manis", "6000", 100, "Minuman"},
	{"Nasi Goreng Spesial", "25000", 30, "Makanan"},
	{"Keripik Singkong Pedas", "12000", 40, "Camilan"},
}

func main() {
	businessName := "Warung Demo Therra"
	if len(os.Args) > 1 {
		businessName = strings.Join(os.Args[1:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	maxDevices := 2
	lic, err := usecase.NewLicenseUseCase(store.Licenses).Create(ctx, entity.RoleAdmin, dto.CreateLicenseRequest{
		BusinessName: businessName,
		MaxDevices:   &maxDevices,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear licencia: %v\n", err)
		os.Exit(1)
	}

	products := usecase.NewProductUseCase(store.Products)
	for _, p := range catalog {
		stock := p.stock
		if _, err := products.Create(ctx, dto.CreateProductRequest{
			Name:     p.name,
			Price:    decimal.RequireFromString(p.price),
			Stock:    &stock,
			Category: p.category,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %q: %v\n", p.name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Licencia: %s (%s)\n", lic.LicenseCode, lic.BusinessName)
	fmt.Printf("Productos creados: %d\n", len(catalog))
}
