package ports

import "context"

// LoginLimiter cuenta intentos fallidos de login por clave (código de licencia).
// Los adaptadores registran sus propios fallos de infraestructura y no bloquean
// el login cuando el backend no responde.
type LoginLimiter interface {
	Blocked(ctx context.Context, key string) bool
	RecordFailure(ctx context.Context, key string)
	Reset(ctx context.Context, key string)
}
