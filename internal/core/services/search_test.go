package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/utils"
)

// 2030-06-17 — понедельник в далеком будущем: фильтр "только будущее" не мешает
const futureDate = "2030-06-17"

func slotAt(date string, hour int) domain.TimeSlot {
	day, _ := utils.ParseCivilDate(date)
	start := utils.VancouverTime(day, hour, 0)
	return domain.TimeSlot{Start: start, End: start.Add(time.Hour)}
}

func massageProvider(id string) domain.Provider {
	return domain.Provider{ID: id, Specialty: "massage", SlotDuration: 60}
}

func TestSearch_CalendarFeedProvider(t *testing.T) {
	providers := &stubProviderStore{providers: []domain.Provider{massageProvider("p1")}}
	calendarFeed := &stubCalendarFeed{fn: func(ctx context.Context, p *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{slotAt(futureDate, 9), slotAt(futureDate, 10)}, nil
	}}

	service := NewAvailabilityService(providers, calendarFeed, emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Slots, 2)
}

func TestSearch_JaneFallsBackToCalendarFeed(t *testing.T) {
	provider := massageProvider("p1")
	provider.Jane = &domain.JaneConfig{Subdomain: "clinic", StaffMemberID: 4, TreatmentID: 12}

	providers := &stubProviderStore{providers: []domain.Provider{provider}}
	jane := &stubJane{fn: func(context.Context, *domain.JaneConfig, string, int) ([]domain.TimeSlot, error) {
		return nil, errors.New("unexpected status code: 503 for clinic")
	}}
	calendarFeed := &stubCalendarFeed{fn: func(ctx context.Context, p *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{slotAt(futureDate, 14)}, nil
	}}

	service := NewAvailabilityService(providers, calendarFeed, jane, emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Slots, 1)
	assert.Equal(t, slotAt(futureDate, 14), results[0].Slots[0])
}

func TestSearch_JaneSlotsFilteredToRequestedDate(t *testing.T) {
	provider := massageProvider("p1")
	provider.Jane = &domain.JaneConfig{Subdomain: "clinic"}

	providers := &stubProviderStore{providers: []domain.Provider{provider}}
	jane := &stubJane{fn: func(ctx context.Context, j *domain.JaneConfig, date string, numDays int) ([]domain.TimeSlot, error) {
		assert.Equal(t, futureDate, date)
		assert.Equal(t, 1, numDays)
		return []domain.TimeSlot{slotAt(futureDate, 9), slotAt("2030-06-18", 9)}, nil
	}}

	service := NewAvailabilityService(providers, emptyCalendarFeed(), jane, emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Slots, 1)
	assert.Equal(t, slotAt(futureDate, 9), results[0].Slots[0])
}

func TestSearch_MarketplaceProviderNoFallback(t *testing.T) {
	provider := massageProvider("p1")
	provider.Marketplace = &domain.MarketplaceConfig{StaffMemberGuid: "stf_1", LocationID: 2}

	calendarCalled := false
	providers := &stubProviderStore{providers: []domain.Provider{provider}}
	marketplace := emptyMarketplace()
	marketplace.openingsFn = func(ctx context.Context, guid string, locationID int) ([]domain.TimeSlot, error) {
		assert.Equal(t, "stf_1", guid)
		assert.Equal(t, 2, locationID)
		return []domain.TimeSlot{slotAt(futureDate, 11), slotAt("2030-06-19", 11)}, nil
	}
	calendarFeed := &stubCalendarFeed{fn: func(context.Context, *domain.Provider, time.Time) ([]domain.TimeSlot, error) {
		calendarCalled = true
		return []domain.TimeSlot{}, nil
	}}

	service := NewAvailabilityService(providers, calendarFeed, emptyJane(), marketplace, emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Slots, 1)
	assert.Equal(t, slotAt(futureDate, 11), results[0].Slots[0])
	// Откат с маркетплейса на другие источники не предусмотрен
	assert.False(t, calendarCalled)
}

func TestSearch_WindowFilter(t *testing.T) {
	providers := &stubProviderStore{providers: []domain.Provider{massageProvider("p1")}}
	calendarFeed := &stubCalendarFeed{fn: func(context.Context, *domain.Provider, time.Time) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{
			slotAt(futureDate, 5),
			slotAt(futureDate, 9),
			slotAt(futureDate, 13),
			slotAt(futureDate, 18),
		}, nil
	}}

	service := NewAvailabilityService(providers, calendarFeed, emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate, Window: "morning"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Slots, 1)
	assert.Equal(t, 9, utils.LocalHour(results[0].Slots[0].Start))
}

func TestSearch_TodayDropsPastSlots(t *testing.T) {
	providers := &stubProviderStore{providers: []domain.Provider{massageProvider("p1")}}
	calendarFeed := &stubCalendarFeed{fn: func(context.Context, *domain.Provider, time.Time) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{
			slotAt("2025-06-16", 9),
			slotAt("2025-06-16", 12),
			slotAt("2025-06-16", 15),
		}, nil
	}}

	service := NewAvailabilityService(providers, calendarFeed, emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})
	// Сейчас 12:30 по Ванкуверу: слот 12:00 уже начался и отбрасывается
	day, _ := utils.ParseCivilDate("2025-06-16")
	service.WithClock(func() time.Time { return utils.VancouverTime(day, 12, 30) })

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: "2025-06-16"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Slots, 1)
	assert.Equal(t, 15, utils.LocalHour(results[0].Slots[0].Start))
}

func TestSearch_AvailableProvidersSortedFirst(t *testing.T) {
	providers := &stubProviderStore{providers: []domain.Provider{
		massageProvider("late"),
		massageProvider("empty-a"),
		massageProvider("early"),
		massageProvider("empty-b"),
	}}
	calendarFeed := &stubCalendarFeed{fn: func(ctx context.Context, p *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
		switch p.ID {
		case "late":
			return []domain.TimeSlot{slotAt(futureDate, 15)}, nil
		case "early":
			return []domain.TimeSlot{slotAt(futureDate, 9)}, nil
		default:
			return []domain.TimeSlot{}, nil
		}
	}}

	service := NewAvailabilityService(providers, calendarFeed, emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: futureDate})

	require.NoError(t, err)
	require.Len(t, results, 4)
	// Провайдеры со слотами первыми, по самому раннему слоту
	assert.Equal(t, "early", results[0].Provider.ID)
	assert.Equal(t, "late", results[1].Provider.ID)
	// Пустые — следом, в исходном порядке
	assert.Equal(t, "empty-a", results[2].Provider.ID)
	assert.Equal(t, "empty-b", results[3].Provider.ID)
}

func TestSearch_InvalidDate(t *testing.T) {
	providers := &stubProviderStore{}

	service := NewAvailabilityService(providers, emptyCalendarFeed(), emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	_, err := service.Search(context.Background(), domain.SearchQuery{Service: "massage", Date: "June 16"})

	assert.Error(t, err)
}

func TestSearch_DefaultsToTodayAndMassage(t *testing.T) {
	var gotSpecialty string
	store := &stubProviderStore{providers: []domain.Provider{massageProvider("p1")}}
	calendarFeed := &stubCalendarFeed{fn: func(ctx context.Context, p *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
		gotSpecialty = p.Specialty
		return []domain.TimeSlot{}, nil
	}}

	service := NewAvailabilityService(store, calendarFeed, emptyJane(), emptyMarketplace(), emptyGeocoder(), testConfig(), nopLogger{})

	results, err := service.Search(context.Background(), domain.SearchQuery{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "massage", gotSpecialty)
}
