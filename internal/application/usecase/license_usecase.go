package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/license"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// codeAttempts reintentos ante colisión del código generado.
const codeAttempts = 3

// LicenseUseCase consola de administración de licencias.
type LicenseUseCase struct {
	repo    repository.LicenseRepository
	clock   func() time.Time
	newCode func(time.Time) (string, error)
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(repo repository.LicenseRepository) *LicenseUseCase {
	return &LicenseUseCase{repo: repo, clock: time.Now, newCode: license.NewCode}
}

// List devuelve todas las licencias de comercio con su estado calculado y los conteos.
func (uc *LicenseUseCase) List(ctx context.Context) (*dto.LicenseListResponse, error) {
	now := uc.clock().UTC()
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.Stats(ctx, now)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLicenseResponse(l, now))
	}
	return &dto.LicenseListResponse{
		Licenses: out,
		Stats: dto.LicenseStatsResponse{
			Total:    stats.Total,
			Active:   stats.Active,
			Inactive: stats.Inactive,
		},
	}, nil
}

// Create emite una licencia nueva para un comercio. createdBy es el subject del admin.
func (uc *LicenseUseCase) Create(ctx context.Context, createdBy string, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, domain.Invalid("Business name required")
	}
	maxDevices := 1
	if in.MaxDevices != nil {
		maxDevices = *in.MaxDevices
	}
	if maxDevices < 1 {
		return nil, domain.Invalid("maxDevices must be at least 1")
	}

	now := uc.clock().UTC()
	l := &entity.License{
		ID:           uuid.New().String(),
		BusinessName: name,
		Role:         entity.RoleUMKM,
		IsActive:     true,
		ExpiresAt:    in.ExpiresAt.Time,
		MaxDevices:   maxDevices,
		CreatedBy:    createdBy,
		Devices:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var err error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		l.LicenseCode, err = uc.newCode(now)
		if err != nil {
			return nil, err
		}
		err = uc.repo.Create(ctx, l)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	out := toLicenseResponse(l, now)
	return &out, nil
}

// Update aplica una actualización parcial. expiresAt: null quita el vencimiento.
func (uc *LicenseUseCase) Update(ctx context.Context, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	id := strings.TrimSpace(in.LicenseID)
	if id == "" {
		return nil, domain.Invalid("License ID required")
	}
	if in.MaxDevices != nil && *in.MaxDevices < 1 {
		return nil, domain.Invalid("maxDevices must be at least 1")
	}
	patch := repository.LicensePatch{
		IsActive:     in.IsActive,
		ExpiresAtSet: in.ExpiresAt.Set,
		ExpiresAt:    in.ExpiresAt.Time,
		MaxDevices:   in.MaxDevices,
	}
	if in.BusinessName != nil {
		name := strings.TrimSpace(*in.BusinessName)
		if name == "" {
			return nil, domain.Invalid("Business name required")
		}
		patch.BusinessName = &name
	}

	l, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	out := toLicenseResponse(l, uc.clock().UTC())
	return &out, nil
}

// Delete elimina la licencia y sus dispositivos. ErrNotFound si no había nada que borrar.
func (uc *LicenseUseCase) Delete(ctx context.Context, in dto.LicenseIDRequest) error {
	id := strings.TrimSpace(in.LicenseID)
	if id == "" {
		return domain.Invalid("License ID required")
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// ResetDevices desvincula todos los dispositivos; las sesiones abiertas dejan de ser válidas.
func (uc *LicenseUseCase) ResetDevices(ctx context.Context, in dto.LicenseIDRequest) (*dto.LicenseResponse, error) {
	id := strings.TrimSpace(in.LicenseID)
	if id == "" {
		return nil, domain.Invalid("License ID required")
	}
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.ClearDevices(ctx, id); err != nil {
		return nil, err
	}
	l.Devices = []string{}
	out := toLicenseResponse(l, uc.clock().UTC())
	return &out, nil
}

func toLicenseResponse(l *entity.License, now time.Time) dto.LicenseResponse {
	devices := l.Devices
	if devices == nil {
		devices = []string{}
	}
	return dto.LicenseResponse{
		ID:           l.ID,
		LicenseCode:  l.LicenseCode,
		BusinessName: l.BusinessName,
		Role:         l.Role,
		IsActive:     l.IsActive,
		Status:       license.Status(l, now),
		ExpiresAt:    l.ExpiresAt,
		MaxDevices:   l.MaxDevices,
		Devices:      devices,
		DeviceCount:  len(devices),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
