package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

var _ ports.LoginLimiter = (*LoginLimiter)(nil)

const keyPrefix = "therra:login:fail:"

// LoginLimiter cuenta fallos de login por código de licencia en una ventana fija (INCR + EXPIRE).
// Si Redis no responde el login no se bloquea: se registra el error y se deja pasar.
type LoginLimiter struct {
	client      goredis.Cmdable
	maxAttempts int64
	window      time.Duration
	log         *logger.Logger
}

// NewLoginLimiter construye el limitador.
func NewLoginLimiter(client goredis.Cmdable, maxAttempts int, window time.Duration, log *logger.Logger) *LoginLimiter {
	if log == nil {
		log = logger.Nop()
	}
	return &LoginLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
		log:         log.Component("login_limiter"),
	}
}

func limiterKey(code string) string {
	return keyPrefix + code
}

// Blocked indica si el código superó el máximo de fallos en la ventana actual.
func (l *LoginLimiter) Blocked(ctx context.Context, code string) bool {
	n, err := l.client.Get(ctx, limiterKey(code)).Int64()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			l.log.Warn().Err(err).Msg("no se pudo leer el contador de intentos")
		}
		return false
	}
	return n >= l.maxAttempts
}

// RecordFailure incrementa el contador; el primer fallo abre la ventana.
func (l *LoginLimiter) RecordFailure(ctx context.Context, code string) {
	key := limiterKey(code)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("no se pudo registrar el intento fallido")
		return
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("no se pudo fijar la ventana de intentos")
		}
	}
}

// Reset borra el contador tras un login correcto.
func (l *LoginLimiter) Reset(ctx context.Context, code string) {
	if err := l.client.Del(ctx, limiterKey(code)).Err(); err != nil {
		l.log.Warn().Err(err).Msg("no se pudo limpiar el contador de intentos")
	}
}
