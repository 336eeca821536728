package services

import (
	"context"
	"time"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(string, out.LogFields)               {}
func (l nopLogger) Info(string, out.LogFields)                {}
func (l nopLogger) Warn(string, out.LogFields)                {}
func (l nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort   { return l }
func (l nopLogger) WithModule(string) out.LoggerPort          { return l }

type stubProviderStore struct {
	providers []domain.Provider
}

func (s *stubProviderStore) GetAll() []domain.Provider { return s.providers }

func (s *stubProviderStore) GetByID(id string) (*domain.Provider, bool) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return &s.providers[i], true
		}
	}
	return nil, false
}

func (s *stubProviderStore) GetBySpecialty(specialty string) []domain.Provider {
	matched := make([]domain.Provider, 0)
	for _, p := range s.providers {
		if p.Specialty == specialty {
			matched = append(matched, p)
		}
	}
	return matched
}

type stubCalendarFeed struct {
	fn func(ctx context.Context, provider *domain.Provider, date time.Time) ([]domain.TimeSlot, error)
}

func (s *stubCalendarFeed) GetAvailableSlots(ctx context.Context, provider *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
	return s.fn(ctx, provider, date)
}

type stubJane struct {
	fn func(ctx context.Context, jane *domain.JaneConfig, date string, numDays int) ([]domain.TimeSlot, error)
}

func (s *stubJane) GetOpenings(ctx context.Context, jane *domain.JaneConfig, date string, numDays int) ([]domain.TimeSlot, error) {
	return s.fn(ctx, jane, date, numDays)
}

type stubMarketplace struct {
	searchFn   func(ctx context.Context, lat, lng float64, bounds domain.BoundingBox, discipline string, maxResults int) ([]domain.Practitioner, error)
	openingsFn func(ctx context.Context, staffMemberGuid string, locationID int) ([]domain.TimeSlot, error)
}

func (s *stubMarketplace) SearchPractitioners(ctx context.Context, lat, lng float64, bounds domain.BoundingBox, discipline string, maxResults int) ([]domain.Practitioner, error) {
	return s.searchFn(ctx, lat, lng, bounds, discipline, maxResults)
}

func (s *stubMarketplace) GetOpenings(ctx context.Context, staffMemberGuid string, locationID int) ([]domain.TimeSlot, error) {
	return s.openingsFn(ctx, staffMemberGuid, locationID)
}

type stubGeocoder struct {
	fn func(ctx context.Context, address string) (*domain.Coordinates, error)
}

func (s *stubGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	return s.fn(ctx, address)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Jane.NumDays = 1
	cfg.Marketplace.MaxResults = 30
	return cfg
}

func emptyCalendarFeed() *stubCalendarFeed {
	return &stubCalendarFeed{fn: func(context.Context, *domain.Provider, time.Time) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{}, nil
	}}
}

func emptyJane() *stubJane {
	return &stubJane{fn: func(context.Context, *domain.JaneConfig, string, int) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{}, nil
	}}
}

func emptyMarketplace() *stubMarketplace {
	return &stubMarketplace{
		searchFn: func(context.Context, float64, float64, domain.BoundingBox, string, int) ([]domain.Practitioner, error) {
			return []domain.Practitioner{}, nil
		},
		openingsFn: func(context.Context, string, int) ([]domain.TimeSlot, error) {
			return []domain.TimeSlot{}, nil
		},
	}
}

func emptyGeocoder() *stubGeocoder {
	return &stubGeocoder{fn: func(context.Context, string) (*domain.Coordinates, error) {
		return nil, nil
	}}
}
