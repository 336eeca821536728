package cache

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// Кэширование маркетплейса.
// Пустые записи хранятся, но не переиспользуются: пустой результат
// мог быть следствием сбоя и не должен скрывать появившиеся окна.

func (c *CacheAdapter) GetPractitioners(ctx context.Context, key string) ([]domain.Practitioner, bool) {
	practitioners, exists := c.practitioners.get(key, c.now())
	if !exists || len(practitioners) == 0 {
		c.logger.Debug("cache.practitioners.miss", out.LogFields{
			"key":   key,
			"empty": exists,
		})
		return nil, false
	}

	c.logger.Debug("cache.practitioners.hit", out.LogFields{
		"key":   key,
		"count": len(practitioners),
	})
	return practitioners, true
}

func (c *CacheAdapter) StorePractitioners(ctx context.Context, key string, practitioners []domain.Practitioner) {
	c.practitioners.store(key, practitioners, c.now())
}

func (c *CacheAdapter) GetMarketplaceOpenings(ctx context.Context, key string) ([]domain.TimeSlot, bool) {
	slots, exists := c.marketplaceOpenings.get(key, c.now())
	if !exists || len(slots) == 0 {
		c.logger.Debug("cache.marketplace_openings.miss", out.LogFields{
			"key":   key,
			"empty": exists,
		})
		return nil, false
	}

	c.logger.Debug("cache.marketplace_openings.hit", out.LogFields{
		"key":        key,
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *CacheAdapter) StoreMarketplaceOpenings(ctx context.Context, key string, slots []domain.TimeSlot) {
	c.marketplaceOpenings.store(key, slots, c.now())
}
