package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

const licenseColumns = `l.id, l.license_code, l.business_name, l.role, l.is_active, l.expires_at,
	l.max_devices, l.created_by, l.created_at, l.updated_at`

// licenseDevicesColumn agrega los dispositivos en orden de alta; ARRAY() nunca es NULL.
const licenseDevicesColumn = `ARRAY(SELECT d.device_id FROM license_devices d
	WHERE d.license_id = l.id ORDER BY d.created_at, d.device_id)`

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL (usable con pool o tx).
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

func scanLicense(row pgx.Row, withDevices bool) (*entity.License, error) {
	var l entity.License
	dest := []any{
		&l.ID, &l.LicenseCode, &l.BusinessName, &l.Role, &l.IsActive, &l.ExpiresAt,
		&l.MaxDevices, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	}
	if withDevices {
		dest = append(dest, &l.Devices)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if l.ExpiresAt != nil {
		t := l.ExpiresAt.UTC()
		l.ExpiresAt = &t
	}
	return &l, nil
}

// Create persiste una licencia nueva. ErrDuplicate si el código ya existe.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) error {
	query := `
		INSERT INTO licenses (id, license_code, business_name, role, is_active, expires_at, max_devices, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.LicenseCode, l.BusinessName, l.Role, l.IsActive, l.ExpiresAt,
		l.MaxDevices, l.CreatedBy, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia de comercio con sus dispositivos.
func (r *LicenseRepo) GetByID(ctx context.Context, id string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + `, ` + licenseDevicesColumn + `
		FROM licenses l WHERE l.id = $1 AND l.role = 'umkm'`
	l, err := scanLicense(r.q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return l, nil
}

// GetByCodeForUpdate bloquea la fila de la licencia hasta el fin de la transacción.
// No trae dispositivos; se leen aparte con ListDevices dentro de la misma tx.
func (r *LicenseRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + `
		FROM licenses l WHERE l.license_code = $1 AND l.role = 'umkm'
		FOR UPDATE`
	l, err := scanLicense(r.q.QueryRow(ctx, query, code), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license by code: %w", err)
	}
	return l, nil
}

// List lista las licencias de comercio, más recientes primero.
func (r *LicenseRepo) List(ctx context.Context) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + `, ` + licenseDevicesColumn + `
		FROM licenses l WHERE l.role = 'umkm'
		ORDER BY l.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.License
	for rows.Next() {
		l, err := scanLicense(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Stats cuenta por estado calculado en now. inactive incluye las vencidas.
func (r *LicenseRepo) Stats(ctx context.Context, now time.Time) (entity.LicenseStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active AND (expires_at IS NULL OR expires_at > $1)),
			COUNT(*) FILTER (WHERE NOT is_active OR (expires_at IS NOT NULL AND expires_at <= $1))
		FROM licenses WHERE role = 'umkm'`
	var st entity.LicenseStats
	if err := r.q.QueryRow(ctx, query, now).Scan(&st.Total, &st.Active, &st.Inactive); err != nil {
		return st, fmt.Errorf("license stats: %w", err)
	}
	return st, nil
}

// Update aplica solo las columnas presentes en el patch. Siempre toca updated_at.
func (r *LicenseRepo) Update(ctx context.Context, id string, p repository.LicensePatch) (*entity.License, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if p.ExpiresAtSet {
		add("expires_at", p.ExpiresAt)
	}
	if p.MaxDevices != nil {
		add("max_devices", *p.MaxDevices)
	}
	if p.BusinessName != nil {
		add("business_name", *p.BusinessName)
	}

	query := `UPDATE licenses SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 AND role = 'umkm'`
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update license: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete borra la licencia; los dispositivos caen por ON DELETE CASCADE.
func (r *LicenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM licenses WHERE id = $1 AND role = 'umkm'`, id)
	if err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete license: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListDevices dispositivos vinculados en orden de alta.
func (r *LicenseRepo) ListDevices(ctx context.Context, licenseID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT device_id FROM license_devices WHERE license_id = $1 ORDER BY created_at, device_id`, licenseID)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	devices, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan devices: %w", err)
	}
	return devices, nil
}

// AddDevice vincula un dispositivo. ErrDuplicate si ya estaba (UNIQUE license_id, device_id).
func (r *LicenseRepo) AddDevice(ctx context.Context, licenseID, deviceID string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO license_devices (license_id, device_id) VALUES ($1, $2)`, licenseID, deviceID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("add device: %w", err)
	}
	return nil
}

// ClearDevices desvincula todos los dispositivos de la licencia.
func (r *LicenseRepo) ClearDevices(ctx context.Context, licenseID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM license_devices WHERE license_id = $1`, licenseID); err != nil {
		return fmt.Errorf("clear devices: %w", err)
	}
	return nil
}
