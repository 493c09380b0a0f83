package dto

import "time"

// CreateLicenseRequest entrada para emitir una licencia.
type CreateLicenseRequest struct {
	BusinessName string       `json:"businessName"`
	ExpiresAt    OptionalTime `json:"expiresAt"`
	MaxDevices   *int         `json:"maxDevices"`
}

// UpdateLicenseRequest actualización parcial: solo cambian los campos enviados.
type UpdateLicenseRequest struct {
	LicenseID    string       `json:"licenseId"`
	IsActive     *bool        `json:"isActive"`
	ExpiresAt    OptionalTime `json:"expiresAt"`
	MaxDevices   *int         `json:"maxDevices"`
	BusinessName *string      `json:"businessName"`
}

// LicenseIDRequest entrada de delete y reset-devices.
type LicenseIDRequest struct {
	LicenseID string `json:"licenseId"`
}

// LicenseResponse salida de una licencia con su estado calculado.
type LicenseResponse struct {
	ID           string     `json:"id"`
	LicenseCode  string     `json:"license_code"`
	BusinessName string     `json:"business_name"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	Status       string     `json:"status"`
	ExpiresAt    *time.Time `json:"expires_at"`
	MaxDevices   int        `json:"max_devices"`
	Devices      []string   `json:"devices"`
	DeviceCount  int        `json:"device_count"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LicenseStatsResponse conteos agregados.
type LicenseStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// LicenseListResponse respuesta de GET /licenses.
type LicenseListResponse struct {
	Licenses []LicenseResponse   `json:"licenses"`
	Stats    LicenseStatsResponse `json:"stats"`
}

// LicenseEnvelope respuesta con una licencia.
type LicenseEnvelope struct {
	License LicenseResponse `json:"license"`
}
