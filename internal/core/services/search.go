package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

// sourceResult — явный результат одного источника: слоты или причина отказа.
// Цепочка отката идет по упорядоченному списку источников провайдера.
type sourceResult struct {
	source domain.SlotSource
	slots  []domain.TimeSlot
	err    error
}

// Search выполняет агрегированный поиск: все провайдеры услуги опрашиваются
// конкурентно, отказ одного не блокирует и не роняет остальных.
func (s *AvailabilityService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error) {
	if query.Service == "" {
		query.Service = "massage"
	}
	if query.Window == "" {
		query.Window = "any"
	}
	if query.Date == "" {
		query.Date = utils.LocalDate(s.now())
	}

	date, err := utils.ParseCivilDate(query.Date)
	if err != nil {
		return nil, fmt.Errorf("search.invalid_date: %w", err)
	}

	providers := s.providers.GetBySpecialty(query.Service)

	s.logger.Info("search.started", out.LogFields{
		"service":   query.Service,
		"date":      query.Date,
		"window":    query.Window,
		"providers": len(providers),
	})

	isToday := query.Date == utils.LocalDate(s.now())

	// Каждая горутина пишет только свой индекс, координация не нужна
	results := make([]domain.ProviderAvailability, len(providers))
	var wg sync.WaitGroup

	for i := range providers {
		wg.Add(1)
		go func(i int, provider domain.Provider) {
			defer wg.Done()

			slots := s.providerSlots(ctx, &provider, date, query.Date)
			slots = filterByWindow(slots, query.Window)
			if isToday {
				slots = filterFuture(slots, s.now())
			}

			results[i] = domain.ProviderAvailability{Provider: provider, Slots: slots}
		}(i, providers[i])
	}

	wg.Wait()

	return partitionResults(results), nil
}

// providerSlots проходит цепочку источников провайдера по порядку
// и возвращает слоты первого успешного.
func (s *AvailabilityService) providerSlots(ctx context.Context, provider *domain.Provider, date time.Time, dateStr string) []domain.TimeSlot {
	for _, source := range provider.Sources() {
		result := s.fetchFromSource(ctx, provider, source, date, dateStr)
		if result.err != nil {
			s.logger.Warn("search.source_failed", out.LogFields{
				"providerId": provider.ID,
				"source":     string(result.source),
				"error":      result.err.Error(),
			})
			continue
		}
		return result.slots
	}

	return []domain.TimeSlot{}
}

func (s *AvailabilityService) fetchFromSource(ctx context.Context, provider *domain.Provider, source domain.SlotSource, date time.Time, dateStr string) sourceResult {
	switch source {
	case domain.SlotSourceMarketplace:
		slots, err := s.marketplace.GetOpenings(ctx, provider.Marketplace.StaffMemberGuid, provider.Marketplace.LocationID)
		if err != nil {
			return sourceResult{source: source, err: err}
		}
		// Маркетплейс отдает многодневное окно: оставляем запрошенную дату
		return sourceResult{source: source, slots: filterToLocalDate(slots, dateStr)}

	case domain.SlotSourceJane:
		slots, err := s.jane.GetOpenings(ctx, provider.Jane, dateStr, s.cfg.Jane.NumDays)
		if err != nil {
			return sourceResult{source: source, err: err}
		}
		return sourceResult{source: source, slots: filterToLocalDate(slots, dateStr)}

	default:
		slots, err := s.calendarFeed.GetAvailableSlots(ctx, provider, date)
		if err != nil {
			return sourceResult{source: source, err: err}
		}
		return sourceResult{source: source, slots: slots}
	}
}
