package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/barberlane/booking-engine/internal/domain/appointment"
)

// AvailabilityCache guarda por pouco tempo o resultado consultivo do cálculo
// de horários. É best-effort: redis fora do ar degrada para o cálculo direto.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(addr string) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func NewAvailabilityCacheWithClient(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func key(providerID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", providerID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	providerID uint,
	date string,
) (*domain.Availability, bool) {

	raw, err := c.rdb.Get(ctx, key(providerID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var av domain.Availability
	if err := json.Unmarshal(raw, &av); err != nil {
		return nil, false
	}
	return &av, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	providerID uint,
	date string,
	av *domain.Availability,
) {
	raw, err := json.Marshal(av)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(providerID, date), raw, c.ttl)
}

// Invalidate derruba a entrada após qualquer escrita que mude a ocupação.
func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	providerID uint,
	date string,
) {
	c.rdb.Del(ctx, key(providerID, date))
}
