package dto

import "time"

// LicenseLoginRequest entrada del login de comercio.
type LicenseLoginRequest struct {
	LicenseCode string `json:"licenseCode"`
	DeviceID    string `json:"deviceId"`
}

// AdminLoginRequest entrada del login de la consola.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// SessionUser datos de la sesión que el cliente guarda junto al token.
type SessionUser struct {
	ID           string     `json:"id"`
	LicenseCode  string     `json:"license_code,omitempty"`
	BusinessName string     `json:"business_name,omitempty"`
	Role         string     `json:"role"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	MaxDevices   int        `json:"max_devices,omitempty"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
