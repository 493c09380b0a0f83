// Package redis contiene los adaptadores sobre Redis (go-redis v9).
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/THScholar/Therra-Ai-Platform/pkg/config"
)

const (
	dialTimeout = 2 * time.Second
	opTimeout   = 500 * time.Millisecond
)

// NewClient crea el cliente con timeouts cortos: Redis es opcional y no debe frenar el login.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})
}

// Ping verifica la conectividad.
func Ping(ctx context.Context, client *goredis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
