package out

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
)

// CachePort — четыре независимых TTL-кэша по источникам.
// Записи маркетплейса с пустыми данными не переиспользуются:
// пустой результат всегда ведет к новому запросу наружу.
type CachePort interface {
	// Сырой текст iCal-фида, ключ — URL фида
	GetFeedBody(ctx context.Context, url string) (string, bool)
	StoreFeedBody(ctx context.Context, url string, body string)

	// Окна прямого вендора, ключ — subdomain:staff:treatment:date
	GetJaneOpenings(ctx context.Context, key string) ([]domain.TimeSlot, bool)
	StoreJaneOpenings(ctx context.Context, key string, slots []domain.TimeSlot)

	// Результаты поиска маркетплейса, ключ — lat:lng:discipline
	GetPractitioners(ctx context.Context, key string) ([]domain.Practitioner, bool)
	StorePractitioners(ctx context.Context, key string, practitioners []domain.Practitioner)

	// Окна маркетплейса, ключ — staffGuid:locationId
	GetMarketplaceOpenings(ctx context.Context, key string) ([]domain.TimeSlot, bool)
	StoreMarketplaceOpenings(ctx context.Context, key string, slots []domain.TimeSlot)
}
