package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/license"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo licencias en memoria.
type LicenseRepo struct {
	s  *Store
	tx bool // creado por TxRunner: la transacción ya tiene txMu
}

// NewLicenseRepository construye el repositorio.
func NewLicenseRepository(s *Store) *LicenseRepo {
	return &LicenseRepo{s: s}
}

func (r *LicenseRepo) withDevices(l entity.License) *entity.License {
	l.Devices = append([]string{}, r.s.devices[l.ID]...)
	return &l
}

// Create persiste una licencia; ErrDuplicate si el código ya existe.
func (r *LicenseRepo) Create(_ context.Context, l *entity.License) error {
	defer r.s.lock(r.tx)()
	for _, existing := range r.s.licenses {
		if existing.LicenseCode == l.LicenseCode {
			return domain.ErrDuplicate
		}
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	stored := *l
	stored.Devices = nil
	r.s.licenses[l.ID] = stored
	r.s.licenseIDs = append(r.s.licenseIDs, l.ID)
	return nil
}

// GetByID obtiene una licencia de tenant por id.
func (r *LicenseRepo) GetByID(_ context.Context, id string) (*entity.License, error) {
	defer r.s.lock(r.tx)()
	l, ok := r.s.licenses[id]
	if !ok || l.Role != entity.RoleUMKM {
		return nil, nil
	}
	return r.withDevices(l), nil
}

// GetByCodeForUpdate busca por código; el bloqueo lo da TxRunner.
func (r *LicenseRepo) GetByCodeForUpdate(_ context.Context, code string) (*entity.License, error) {
	defer r.s.lock(r.tx)()
	for _, l := range r.s.licenses {
		if l.LicenseCode == code && l.Role == entity.RoleUMKM {
			return r.withDevices(l), nil
		}
	}
	return nil, nil
}

// List devuelve las licencias más recientes primero.
func (r *LicenseRepo) List(_ context.Context) ([]*entity.License, error) {
	defer r.s.lock(r.tx)()
	list := make([]*entity.License, 0, len(r.s.licenseIDs))
	for i := len(r.s.licenseIDs) - 1; i >= 0; i-- {
		l := r.s.licenses[r.s.licenseIDs[i]]
		if l.Role == entity.RoleUMKM {
			list = append(list, r.withDevices(l))
		}
	}
	return list, nil
}

// Stats cuenta licencias por estado calculado en now.
func (r *LicenseRepo) Stats(_ context.Context, now time.Time) (entity.LicenseStats, error) {
	defer r.s.lock(r.tx)()
	var st entity.LicenseStats
	for _, l := range r.s.licenses {
		if l.Role != entity.RoleUMKM {
			continue
		}
		st.Total++
		if license.Status(&l, now) == entity.LicenseStatusActive {
			st.Active++
		} else {
			st.Inactive++
		}
	}
	return st, nil
}

// Update aplica solo los campos presentes en el patch.
func (r *LicenseRepo) Update(_ context.Context, id string, p repository.LicensePatch) (*entity.License, error) {
	defer r.s.lock(r.tx)()
	l, ok := r.s.licenses[id]
	if !ok || l.Role != entity.RoleUMKM {
		return nil, nil
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	if p.ExpiresAtSet {
		l.ExpiresAt = p.ExpiresAt
	}
	if p.MaxDevices != nil {
		l.MaxDevices = *p.MaxDevices
	}
	if p.BusinessName != nil {
		l.BusinessName = *p.BusinessName
	}
	l.UpdatedAt = time.Now().UTC()
	r.s.licenses[id] = l
	return r.withDevices(l), nil
}

// Delete elimina la licencia y sus dispositivos.
func (r *LicenseRepo) Delete(_ context.Context, id string) (bool, error) {
	defer r.s.lock(r.tx)()
	l, ok := r.s.licenses[id]
	if !ok || l.Role != entity.RoleUMKM {
		return false, nil
	}
	delete(r.s.licenses, id)
	delete(r.s.devices, id)
	r.s.licenseIDs = removeID(r.s.licenseIDs, id)
	return true, nil
}

// ListDevices devuelve los dispositivos vinculados en orden de alta.
func (r *LicenseRepo) ListDevices(_ context.Context, licenseID string) ([]string, error) {
	defer r.s.lock(r.tx)()
	return append([]string{}, r.s.devices[licenseID]...), nil
}

// AddDevice vincula un dispositivo; ErrDuplicate si ya estaba.
func (r *LicenseRepo) AddDevice(_ context.Context, licenseID, deviceID string) error {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.licenses[licenseID]; !ok {
		return domain.ErrNotFound
	}
	if slices.Contains(r.s.devices[licenseID], deviceID) {
		return domain.ErrDuplicate
	}
	r.s.devices[licenseID] = append(r.s.devices[licenseID], deviceID)
	return nil
}

// ClearDevices desvincula todos los dispositivos.
func (r *LicenseRepo) ClearDevices(_ context.Context, licenseID string) error {
	defer r.s.lock(r.tx)()
	delete(r.s.devices, licenseID)
	return nil
}
