package cache

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// Кэширование текста iCal-фидов

func (c *CacheAdapter) GetFeedBody(ctx context.Context, url string) (string, bool) {
	body, exists := c.feedBodies.get(url, c.now())
	if !exists {
		c.logger.Debug("cache.feed.miss", out.LogFields{
			"url": url,
		})
		return "", false
	}

	c.logger.Debug("cache.feed.hit", out.LogFields{
		"url":   url,
		"bytes": len(body),
	})
	return body, true
}

func (c *CacheAdapter) StoreFeedBody(ctx context.Context, url string, body string) {
	c.feedBodies.store(url, body, c.now())
}
