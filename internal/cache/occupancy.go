package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	occupancyKey = "recepcao:rooms:status"
	occupancyTTL = 10 * time.Second
)

// OccupancyCache guarda o snapshot do painel de salas no Redis.
// É só conforto de leitura: qualquer erro vira cache miss e a
// contagem volta para o banco. O teto por sala nunca depende daqui.
type OccupancyCache struct {
	rdb *redis.Client
}

func NewOccupancyCache(rdb *redis.Client) *OccupancyCache {
	return &OccupancyCache{rdb: rdb}
}

func (c *OccupancyCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, occupancyKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *OccupancyCache) Set(ctx context.Context, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, occupancyKey, payload, occupancyTTL)
}

func (c *OccupancyCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, occupancyKey)
}
