package calendarfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

const placeholderPrefix = "PLACEHOLDER"

// CalendarFeedAdapter генерирует свободные слоты: занятые интервалы из
// iCal-фида вычитаются из рабочих часов провайдера.
type CalendarFeedAdapter struct {
	client *http.Client
	cache  out.CachePort
	logger out.LoggerPort
}

func NewCalendarFeedAdapter(cache out.CachePort, logger out.LoggerPort) *CalendarFeedAdapter {
	return &CalendarFeedAdapter{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
		logger: logger,
	}
}

// GetAvailableSlots возвращает свободные слоты провайдера на дату.
// Любой сбой фида деградирует до нуля занятых интервалов: доступность
// показывается, а не скрывается.
func (a *CalendarFeedAdapter) GetAvailableSlots(ctx context.Context, provider *domain.Provider, date time.Time) ([]domain.TimeSlot, error) {
	hours := provider.HoursForDate(date)
	if hours == nil {
		// Выходной, без похода в сеть
		return []domain.TimeSlot{}, nil
	}

	var busy []domain.BusyInterval

	// Фид запрашиваем только если настроен реальный URL
	if provider.ICalURL != "" && !strings.HasPrefix(provider.ICalURL, placeholderPrefix) {
		body, err := a.fetchFeed(ctx, provider.ICalURL)
		if err != nil {
			a.logger.Error("ical.feed.fetch_failed", out.LogFields{
				"providerId": provider.ID,
				"error":      err.Error(),
			})
		} else {
			busy = parseBusyIntervals(body, date, a.logger)
		}
	}

	return buildSlots(date, hours, provider.SlotDuration, busy), nil
}

// fetchFeed возвращает текст фида через кэш (TTL 15 минут).
func (a *CalendarFeedAdapter) fetchFeed(ctx context.Context, url string) (string, error) {
	if a.cache != nil {
		if body, exists := a.cache.GetFeedBody(ctx, url); exists {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	body := string(data)
	if a.cache != nil {
		a.cache.StoreFeedBody(ctx, url, body)
	}

	a.logger.Debug("ical.feed.fetch_success", out.LogFields{
		"url":   url,
		"bytes": len(body),
	})

	return body, nil
}
