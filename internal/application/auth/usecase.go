package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/license"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
	"github.com/THScholar/Therra-Ai-Platform/pkg/jwt"
)

// adminSubject es el subject de los tokens de la consola.
const adminSubject = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login de comercio (licencia + dispositivo),
// login de admin y verificación de sesiones activas.
type AuthUseCase struct {
	tx        LicenseTxRunner
	licenses  repository.LicenseRepository
	limiter   ports.LoginLimiter // nil = sin límite de intentos
	adminHash []byte
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. adminHash es un hash bcrypt.
func NewAuthUseCase(
	tx LicenseTxRunner,
	licenses repository.LicenseRepository,
	limiter ports.LoginLimiter,
	adminHash string,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		tx:        tx,
		licenses:  licenses,
		limiter:   limiter,
		adminHash: []byte(adminHash),
		jwtCfg:    jwtCfg,
	}
}

// HashAdminPassword deriva el hash bcrypt cuando solo se configuró ADMIN_PASSWORD.
func HashAdminPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	return string(hash), nil
}

// LicenseLogin valida la licencia, admite el dispositivo y emite el token de sesión.
// Errores: ErrInvalidInput, ErrTooManyAttempts, ErrNotFound, ErrLicenseInactive,
// ErrLicenseExpired, ErrDeviceLimitExceeded.
func (uc *AuthUseCase) LicenseLogin(ctx context.Context, in dto.LicenseLoginRequest) (*dto.LoginResponse, error) {
	code := strings.TrimSpace(in.LicenseCode)
	deviceID := strings.TrimSpace(in.DeviceID)
	if code == "" || deviceID == "" {
		return nil, domain.Invalid("License code and device ID required")
	}
	if uc.limiter != nil && uc.limiter.Blocked(ctx, code) {
		return nil, domain.ErrTooManyAttempts
	}

	var admitted *entity.License
	err := uc.tx.RunLicense(ctx, func(repo repository.LicenseRepository) error {
		lic, err := repo.GetByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if lic == nil {
			return domain.ErrNotFound
		}
		if err := license.CheckAccess(lic, time.Now().UTC()); err != nil {
			return err
		}
		devices, err := repo.ListDevices(ctx, lic.ID)
		if err != nil {
			return err
		}
		adm, err := license.AdmitDevice(devices, deviceID, lic.MaxDevices)
		if err != nil {
			return err
		}
		if adm == license.AdmitNew {
			if err := repo.AddDevice(ctx, lic.ID, deviceID); err != nil {
				return err
			}
			devices = append(devices, deviceID)
		}
		lic.Devices = devices
		admitted = lic
		return nil
	})
	if err != nil {
		if uc.limiter != nil && errors.Is(err, domain.ErrNotFound) {
			uc.limiter.RecordFailure(ctx, code)
		}
		return nil, err
	}
	if uc.limiter != nil {
		uc.limiter.Reset(ctx, code)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admitted.ID, admitted.ID, deviceID, entity.RoleUMKM, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.SessionUser{
			ID:           admitted.ID,
			LicenseCode:  admitted.LicenseCode,
			BusinessName: admitted.BusinessName,
			Role:         entity.RoleUMKM,
			ExpiresAt:    admitted.ExpiresAt,
			MaxDevices:   admitted.MaxDevices,
		},
	}, nil
}

// AdminLogin compara la contraseña con el hash configurado y emite un token de admin.
func (uc *AuthUseCase) AdminLogin(_ context.Context, in dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, domain.Invalid("Password required")
	}
	if err := bcrypt.CompareHashAndPassword(uc.adminHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, adminSubject, "", "", entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.SessionUser{ID: adminSubject, Role: entity.RoleAdmin},
	}, nil
}

// VerifySession relee la licencia de un token de comercio en cada petición.
// ErrUnauthorized si la licencia ya no existe o el dispositivo fue desvinculado;
// ErrLicenseInactive / ErrLicenseExpired según su estado actual.
func (uc *AuthUseCase) VerifySession(ctx context.Context, licenseID, deviceID string) error {
	lic, err := uc.licenses.GetByID(ctx, licenseID)
	if err != nil {
		return err
	}
	if lic == nil {
		return domain.ErrUnauthorized
	}
	if err := license.CheckAccess(lic, time.Now().UTC()); err != nil {
		return err
	}
	if !slices.Contains(lic.Devices, deviceID) {
		return domain.ErrUnauthorized
	}
	return nil
}
