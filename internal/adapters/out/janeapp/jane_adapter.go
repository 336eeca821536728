package janeapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"strconv"
	"time"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// janeOpening — нативная запись окна вендора. Метаданные (кабинет, статус)
// отбрасываются при нормализации в TimeSlot.
type janeOpening struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type janeStaffOpenings struct {
	ID        int           `json:"id"`
	FullName  string        `json:"full_name"`
	FirstDate string        `json:"first_date"`
	Openings  []janeOpening `json:"openings"`
}

// JaneAdapter ходит в прямой openings-эндпоинт вендора.
// В отличие от календаря и маркетплейса ошибки здесь поднимаются наружу:
// вызывающий откатывается на календарный источник.
type JaneAdapter struct {
	client     *http.Client
	baseDomain string
	cache      out.CachePort
	logger     out.LoggerPort
}

func NewJaneAdapter(cfg *config.Config, cache out.CachePort, logger out.LoggerPort) *JaneAdapter {
	return &JaneAdapter{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseDomain: cfg.Jane.BaseDomain,
		cache:      cache,
		logger:     logger,
	}
}

// GetOpenings возвращает окна записи на date и numDays вперед.
// Ключ кэша не включает locationId и numDays: локация у провайдера одна,
// а глубина запроса фиксирована конфигом.
func (a *JaneAdapter) GetOpenings(ctx context.Context, jane *domain.JaneConfig, date string, numDays int) ([]domain.TimeSlot, error) {
	cacheKey := fmt.Sprintf("%s:%d:%d:%s", jane.Subdomain, jane.StaffMemberID, jane.TreatmentID, date)

	if a.cache != nil {
		if slots, exists := a.cache.GetJaneOpenings(ctx, cacheKey); exists {
			return slots, nil
		}
	}

	query := nurl.Values{}
	query.Add("location_id", strconv.Itoa(jane.LocationID))
	query.Add("staff_member_id", strconv.Itoa(jane.StaffMemberID))
	query.Add("treatment_id", strconv.Itoa(jane.TreatmentID))
	query.Add("date", date)
	query.Add("num_days", strconv.Itoa(numDays))

	url := fmt.Sprintf("https://%s.%s/api/v2/openings?%s", jane.Subdomain, a.baseDomain, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("jane.openings.fetch_failed", out.LogFields{
			"subdomain": jane.Subdomain,
			"error":     err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("jane.openings.fetch_failed", out.LogFields{
			"subdomain": jane.Subdomain,
			"status":    resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d for %s", resp.StatusCode, jane.Subdomain)
	}

	var staffRecords []janeStaffOpenings
	if err := json.NewDecoder(resp.Body).Decode(&staffRecords); err != nil {
		a.logger.Error("jane.openings.decode_failed", out.LogFields{
			"subdomain": jane.Subdomain,
			"error":     err.Error(),
		})
		return nil, err
	}

	slots := toTimeSlots(staffRecords)

	if a.cache != nil {
		a.cache.StoreJaneOpenings(ctx, cacheKey, slots)
	}

	a.logger.Debug("jane.openings.fetch_success", out.LogFields{
		"subdomain":  jane.Subdomain,
		"staffId":    jane.StaffMemberID,
		"slotsCount": len(slots),
	})

	return slots, nil
}

// toTimeSlots разворачивает окна всех сотрудников в общий вид.
// Временные метки вендора уже содержат таймзону (ISO 8601).
func toTimeSlots(staffRecords []janeStaffOpenings) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	for _, staff := range staffRecords {
		for _, opening := range staff.Openings {
			start, err := time.Parse(time.RFC3339, opening.StartAt)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, opening.EndAt)
			if err != nil {
				continue
			}
			slots = append(slots, domain.TimeSlot{Start: start, End: end})
		}
	}

	return slots
}
