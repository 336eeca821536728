package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

type ttlEntry[T any] struct {
	Data      T
	FetchedAt time.Time
}

// ttlStore — LRU-хранилище с TTL-проверкой при чтении.
// Запись валидна, пока now - FetchedAt < ttl.
type ttlStore[T any] struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, ttlEntry[T]]
	ttl   time.Duration
}

func newTTLStore[T any](size int, ttl time.Duration) (*ttlStore[T], error) {
	c, err := lru.New[string, ttlEntry[T]](size)
	if err != nil {
		return nil, err
	}
	return &ttlStore[T]{cache: c, ttl: ttl}, nil
}

func (s *ttlStore[T]) get(key string, now time.Time) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	entry, exists := s.cache.Get(key)
	if !exists {
		return zero, false
	}
	if now.Sub(entry.FetchedAt) >= s.ttl {
		return zero, false
	}
	return entry.Data, true
}

func (s *ttlStore[T]) store(key string, data T, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Add(key, ttlEntry[T]{Data: data, FetchedAt: now})
}

// CacheAdapter — четыре независимых кэша по источникам.
// Часы инжектируются для тестов, по умолчанию time.Now.
type CacheAdapter struct {
	feedBodies          *ttlStore[string]
	janeOpenings        *ttlStore[[]domain.TimeSlot]
	practitioners       *ttlStore[[]domain.Practitioner]
	marketplaceOpenings *ttlStore[[]domain.TimeSlot]
	now                 func() time.Time
	logger              out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	feedBodies, err := newTTLStore[string](cfg.Cache.Size, cfg.Cache.FeedTTL)
	if err != nil {
		logger.Error("cache.feed.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	janeOpenings, err := newTTLStore[[]domain.TimeSlot](cfg.Cache.Size, cfg.Cache.OpeningsTTL)
	if err != nil {
		return nil, err
	}

	practitioners, err := newTTLStore[[]domain.Practitioner](cfg.Cache.Size, cfg.Cache.OpeningsTTL)
	if err != nil {
		return nil, err
	}

	marketplaceOpenings, err := newTTLStore[[]domain.TimeSlot](cfg.Cache.Size, cfg.Cache.OpeningsTTL)
	if err != nil {
		return nil, err
	}

	return &CacheAdapter{
		feedBodies:          feedBodies,
		janeOpenings:        janeOpenings,
		practitioners:       practitioners,
		marketplaceOpenings: marketplaceOpenings,
		now:                 time.Now,
		logger:              logger.WithModule("CacheAdapter"),
	}, nil
}

// WithClock подменяет источник времени (для тестов TTL).
func (c *CacheAdapter) WithClock(now func() time.Time) *CacheAdapter {
	c.now = now
	return c
}
