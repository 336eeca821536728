package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

type AvailabilityService struct {
	providers    out.ProviderStorePort
	calendarFeed out.CalendarFeedPort
	jane         out.JanePort
	marketplace  out.MarketplacePort
	geocoder     out.GeocoderPort
	logger       out.LoggerPort
	cfg          *config.Config
	now          func() time.Time
}

func NewAvailabilityService(
	providers out.ProviderStorePort,
	calendarFeed out.CalendarFeedPort,
	jane out.JanePort,
	marketplace out.MarketplacePort,
	geocoder out.GeocoderPort,
	cfg *config.Config,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		providers:    providers,
		calendarFeed: calendarFeed,
		jane:         jane,
		marketplace:  marketplace,
		geocoder:     geocoder,
		cfg:          cfg,
		logger:       logger.WithModule("AvailabilityService"),
		now:          time.Now,
	}
}

// WithClock подменяет источник времени (для тестов фильтра "только будущее").
func (s *AvailabilityService) WithClock(now func() time.Time) *AvailabilityService {
	s.now = now
	return s
}

// GetProviderAvailability возвращает слоты одного провайдера на дату
// (страница бронирования). Для сегодняшней даты прошедшие слоты отбрасываются.
func (s *AvailabilityService) GetProviderAvailability(ctx context.Context, providerID string, dateStr string) ([]domain.TimeSlot, error) {
	provider, exists := s.providers.GetByID(providerID)
	if !exists {
		return nil, domain.ErrProviderNotFound
	}

	date, err := utils.ParseCivilDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("availability.invalid_date: %w", err)
	}

	slots, err := s.calendarFeed.GetAvailableSlots(ctx, provider, date)
	if err != nil {
		return nil, err
	}

	if dateStr == utils.LocalDate(s.now()) {
		slots = filterFuture(slots, s.now())
	}

	return slots, nil
}

// Discover ищет специалистов маркетплейса вокруг точки или адреса.
func (s *AvailabilityService) Discover(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
	lat, lng := query.Lat, query.Lng

	if !query.HasCoords {
		if query.Address == "" {
			return nil, domain.ErrMissingLocation
		}

		coords, err := s.geocoder.Geocode(ctx, query.Address)
		if err != nil {
			return nil, err
		}
		if coords == nil {
			return nil, domain.ErrAddressNotFound
		}
		lat, lng = coords.Latitude, coords.Longitude
	}

	discipline := query.Discipline
	if mapped, exists := domain.DisciplineMap[discipline]; exists {
		discipline = mapped
	}

	bounds := domain.BuildBounds(lat, lng, query.RadiusKm)

	practitioners, err := s.marketplace.SearchPractitioners(ctx, lat, lng, bounds, discipline, s.cfg.Marketplace.MaxResults)
	if err != nil {
		return nil, err
	}

	result := &domain.DiscoverResult{
		Lat:           lat,
		Lng:           lng,
		Discipline:    discipline,
		RadiusKm:      query.RadiusKm,
		Practitioners: practitioners,
	}

	// Маркетплейс географически ограничен; пустой результат сопровождаем пояснением
	if len(practitioners) == 0 {
		result.CoverageNote = "The marketplace currently covers North Shore BC and Squamish BC. This location may not yet be in its coverage area."
	}

	return result, nil
}
