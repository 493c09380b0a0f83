package auth

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// LicenseTxRunner ejecuta fn dentro de una transacción con el repositorio de licencias atado a ella.
// La admisión de dispositivos (lectura, conteo e inserción) ocurre completa dentro de fn.
type LicenseTxRunner interface {
	RunLicense(ctx context.Context, fn func(repo repository.LicenseRepository) error) error
}
