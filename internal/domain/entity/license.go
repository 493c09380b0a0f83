package entity

import "time"

// Roles de sesión.
const (
	RoleUMKM  = "umkm"
	RoleAdmin = "admin"
)

// Estados calculados de una licencia (nunca se persisten).
const (
	LicenseStatusActive   = "active"
	LicenseStatusInactive = "inactive"
	LicenseStatusExpired  = "expired"
)

// License representa un comercio (tenant) y la licencia que le da acceso al dashboard.
type License struct {
	ID           string
	LicenseCode  string // único, generado por la consola de admin
	BusinessName string
	Role         string
	IsActive     bool
	ExpiresAt    *time.Time // nil = no vence
	MaxDevices   int
	CreatedBy    string
	Devices      []string // ids de dispositivo vinculados (license_devices)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LicenseStats conteos agregados para la consola de admin.
type LicenseStats struct {
	Total    int
	Active   int
	Inactive int // incluye las vencidas
}
