package cache

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// Кэширование окон прямого вендора

func (c *CacheAdapter) GetJaneOpenings(ctx context.Context, key string) ([]domain.TimeSlot, bool) {
	slots, exists := c.janeOpenings.get(key, c.now())
	if !exists {
		c.logger.Debug("cache.jane_openings.miss", out.LogFields{
			"key": key,
		})
		return nil, false
	}

	c.logger.Debug("cache.jane_openings.hit", out.LogFields{
		"key":        key,
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *CacheAdapter) StoreJaneOpenings(ctx context.Context, key string, slots []domain.TimeSlot) {
	c.janeOpenings.store(key, slots, c.now())
}
