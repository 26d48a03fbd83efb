// Package cache adaptadores de caché del dashboard.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dashboard:"

var _ ports.DashboardCache = (*RedisDashboardCache)(nil)

// RedisDashboardCache guarda el dashboard serializado en JSON con TTL.
type RedisDashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDashboardCache construye la caché. ttl <= 0 usa 5 minutos.
func NewRedisDashboardCache(rdb *redis.Client, ttl time.Duration) *RedisDashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisDashboardCache{rdb: rdb, ttl: ttl}
}

// Key clave de la organización.
func Key(organizationID string) string { return keyPrefix + organizationID }

// Get devuelve nil, nil si no hay entrada.
func (c *RedisDashboardCache) Get(ctx context.Context, organizationID string) (*dto.DashboardResponse, error) {
	raw, err := c.rdb.Get(ctx, Key(organizationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var out dto.DashboardResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		// entrada corrupta: se trata como fallo de caché
		_ = c.rdb.Del(ctx, Key(organizationID)).Err()
		return nil, nil
	}
	return &out, nil
}

// Set guarda el dashboard con el TTL configurado.
func (c *RedisDashboardCache) Set(ctx context.Context, organizationID string, value *dto.DashboardResponse) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.rdb.Set(ctx, Key(organizationID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate borra la entrada de la organización.
func (c *RedisDashboardCache) Invalidate(ctx context.Context, organizationID string) error {
	if err := c.rdb.Del(ctx, Key(organizationID)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

// NoopCache se usa cuando no hay Redis configurado: nunca guarda nada.
type NoopCache struct{}

var _ ports.DashboardCache = NoopCache{}

func (NoopCache) Get(context.Context, string) (*dto.DashboardResponse, error) { return nil, nil }
func (NoopCache) Set(context.Context, string, *dto.DashboardResponse) error { return nil }
func (NoopCache) Invalidate(context.Context, string) error { return nil }
