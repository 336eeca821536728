package in

import (
	"context"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
)

type AvailabilityUseCase interface {
	// Агрегированный поиск по всем провайдерам услуги
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error)

	// Слоты одного провайдера на дату (страница бронирования)
	GetProviderAvailability(ctx context.Context, providerID string, date string) ([]domain.TimeSlot, error)

	// Геопоиск специалистов в маркетплейсе
	Discover(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error)
}
