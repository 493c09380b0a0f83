package repository

import (
	"context"
	"time"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// LicensePatch campos opcionales de una actualización parcial.
// Un puntero nil significa "no tocar". ExpiresAtSet distingue entre
// "no enviado" y "enviado como null" (quitar el vencimiento).
type LicensePatch struct {
	IsActive     *bool
	ExpiresAtSet bool
	ExpiresAt    *time.Time
	MaxDevices   *int
	BusinessName *string
}

// Empty indica si el patch no modifica ninguna columna.
func (p LicensePatch) Empty() bool {
	return p.IsActive == nil && !p.ExpiresAtSet && p.MaxDevices == nil && p.BusinessName == nil
}

// LicenseRepository define el puerto de persistencia para licencias y sus dispositivos.
// Los métodos Get* devuelven (nil, nil) si no existe la licencia.
type LicenseRepository interface {
	Create(ctx context.Context, license *entity.License) error
	GetByID(ctx context.Context, id string) (*entity.License, error)
	// GetByCodeForUpdate bloquea la fila de la licencia hasta el fin de la transacción.
	GetByCodeForUpdate(ctx context.Context, code string) (*entity.License, error)
	List(ctx context.Context) ([]*entity.License, error)
	Stats(ctx context.Context, now time.Time) (entity.LicenseStats, error)
	// Update aplica solo las columnas presentes en el patch; (nil, nil) si no existe.
	Update(ctx context.Context, id string, patch LicensePatch) (*entity.License, error)
	// Delete devuelve false si no había licencia de tenant con ese id.
	Delete(ctx context.Context, id string) (bool, error)

	ListDevices(ctx context.Context, licenseID string) ([]string, error)
	AddDevice(ctx context.Context, licenseID, deviceID string) error
	ClearDevices(ctx context.Context, licenseID string) error
}
