// Package license contiene las reglas puras de la licencia: estado calculado,
// control de acceso y admisión de dispositivos. No toca la base de datos.
package license

import (
	"time"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// Admission resultado de presentar un dispositivo a la licencia.
type Admission int

const (
	// AdmitKnown el dispositivo ya estaba vinculado; no hay cambios.
	AdmitKnown Admission = iota
	// AdmitNew el dispositivo se vincula ocupando un cupo libre.
	AdmitNew
)

// Status calcula el estado de la licencia en el instante now (UTC).
// inactive tiene prioridad sobre expired.
func Status(l *entity.License, now time.Time) string {
	if !l.IsActive {
		return entity.LicenseStatusInactive
	}
	if IsExpired(l, now) {
		return entity.LicenseStatusExpired
	}
	return entity.LicenseStatusActive
}

// IsExpired indica si la licencia tiene vencimiento y ya pasó.
func IsExpired(l *entity.License, now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// CheckAccess valida activación y vencimiento.
func CheckAccess(l *entity.License, now time.Time) error {
	switch Status(l, now) {
	case entity.LicenseStatusInactive:
		return domain.ErrLicenseInactive
	case entity.LicenseStatusExpired:
		return domain.ErrLicenseExpired
	}
	return nil
}

// AdmitDevice decide si deviceID puede usar la licencia dado el conjunto vinculado.
// Un dispositivo conocido se admite siempre; uno nuevo solo si queda cupo.
// Sin desalojo: el primero que se vincula conserva el cupo.
func AdmitDevice(devices []string, deviceID string, maxDevices int) (Admission, error) {
	for _, d := range devices {
		if d == deviceID {
			return AdmitKnown, nil
		}
	}
	if len(devices) >= maxDevices {
		return AdmitKnown, domain.ErrDeviceLimitExceeded
	}
	return AdmitNew, nil
}
