package license_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/license"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		lic  entity.License
		want string
	}{
		{"activa sin vencimiento", entity.License{IsActive: true}, entity.LicenseStatusActive},
		{"activa con vencimiento futuro", entity.License{IsActive: true, ExpiresAt: ptrTime(now.Add(time.Hour))}, entity.LicenseStatusActive},
		{"activa vencida", entity.License{IsActive: true, ExpiresAt: ptrTime(now.Add(-time.Hour))}, entity.LicenseStatusExpired},
		{"vence exactamente ahora", entity.License{IsActive: true, ExpiresAt: ptrTime(now)}, entity.LicenseStatusExpired},
		{"inactiva y vencida", entity.License{IsActive: false, ExpiresAt: ptrTime(now.Add(-time.Hour))}, entity.LicenseStatusInactive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, license.Status(&tc.lic, now))
		})
	}
}

func TestCheckAccess_InactivaIgnoraVencimiento(t *testing.T) {
	lic := &entity.License{IsActive: false, ExpiresAt: ptrTime(now.Add(24 * time.Hour))}
	assert.ErrorIs(t, license.CheckAccess(lic, now), domain.ErrLicenseInactive)

	lic.ExpiresAt = nil
	assert.ErrorIs(t, license.CheckAccess(lic, now), domain.ErrLicenseInactive)
}

func TestCheckAccess_Vencida(t *testing.T) {
	lic := &entity.License{IsActive: true, ExpiresAt: ptrTime(now.Add(-time.Minute))}
	assert.ErrorIs(t, license.CheckAccess(lic, now), domain.ErrLicenseExpired)
}

func TestAdmitDevice_Idempotente(t *testing.T) {
	devices := []string{"dev-a"}

	adm, err := license.AdmitDevice(devices, "dev-a", 1)
	require.NoError(t, err)
	assert.Equal(t, license.AdmitKnown, adm, "un dispositivo conocido no cambia el conjunto")
}

func TestAdmitDevice_CupoLibre(t *testing.T) {
	adm, err := license.AdmitDevice([]string{"dev-a"}, "dev-b", 2)
	require.NoError(t, err)
	assert.Equal(t, license.AdmitNew, adm)

	adm, err = license.AdmitDevice(nil, "dev-a", 1)
	require.NoError(t, err)
	assert.Equal(t, license.AdmitNew, adm)
}

func TestAdmitDevice_CupoLleno(t *testing.T) {
	devices := []string{"dev-a", "dev-b"}

	_, err := license.AdmitDevice(devices, "dev-c", 2)
	assert.ErrorIs(t, err, domain.ErrDeviceLimitExceeded)

	adm, err := license.AdmitDevice(devices, "dev-b", 2)
	require.NoError(t, err, "un dispositivo ya vinculado se acepta aunque el cupo esté lleno")
	assert.Equal(t, license.AdmitKnown, adm)
}
