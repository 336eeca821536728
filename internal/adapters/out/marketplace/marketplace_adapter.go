package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// MarketplaceAdapter ходит в публичный маркетплейс вендора.
// Эндпоинт поиска защищен ботозащитой, инспектирующей отпечаток запроса,
// поэтому запросы несут браузероподобные заголовки (User-Agent, Accept,
// Accept-Language, Origin). Оба метода деградируют до пустого результата:
// сбой одного специалиста не должен ронять агрегацию остальных.
type MarketplaceAdapter struct {
	client    *http.Client
	baseURL   string
	origin    string
	userAgent string
	cache     out.CachePort
	logger    out.LoggerPort
}

func NewMarketplaceAdapter(cfg *config.Config, cache out.CachePort, logger out.LoggerPort) *MarketplaceAdapter {
	return &MarketplaceAdapter{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   cfg.Marketplace.BaseURL,
		origin:    cfg.Marketplace.Origin,
		userAgent: cfg.Marketplace.UserAgent,
		cache:     cache,
		logger:    logger,
	}
}

type searchRequest struct {
	MaxResults  int                `json:"maxResults"`
	BoundingBox domain.BoundingBox `json:"boundingBox"`
	Discipline  string             `json:"discipline"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
}

type searchResponse struct {
	Results []domain.Practitioner `json:"results"`
}

// SearchPractitioners ищет специалистов в географической рамке.
// Ключ кэша — координаты с точностью 4 знака плюс дисциплина; пустые
// закэшированные результаты не переиспользуются.
func (a *MarketplaceAdapter) SearchPractitioners(ctx context.Context, lat, lng float64, bounds domain.BoundingBox, discipline string, maxResults int) ([]domain.Practitioner, error) {
	cacheKey := fmt.Sprintf("%.4f:%.4f:%s", lat, lng, discipline)

	if a.cache != nil {
		if practitioners, exists := a.cache.GetPractitioners(ctx, cacheKey); exists {
			return practitioners, nil
		}
	}

	body, err := json.Marshal(searchRequest{
		MaxResults:  maxResults,
		BoundingBox: bounds,
		Discipline:  discipline,
		Latitude:    lat,
		Longitude:   lng,
	})
	if err != nil {
		return []domain.Practitioner{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/practitioners/search", bytes.NewReader(body))
	if err != nil {
		return []domain.Practitioner{}, nil
	}
	a.setBrowserHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("marketplace.search.fetch_failed", out.LogFields{
			"discipline": discipline,
			"error":      err.Error(),
		})
		return []domain.Practitioner{}, nil
	}
	defer resp.Body.Close()

	a.logger.Info("marketplace.search.response", out.LogFields{
		"discipline": discipline,
		"status":     resp.StatusCode,
	})

	if resp.StatusCode != http.StatusOK {
		// Поиск — функция обнаружения, не критический путь: не-2xx значит "нет результатов"
		return []domain.Practitioner{}, nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		a.logger.Error("marketplace.search.decode_failed", out.LogFields{
			"discipline": discipline,
			"error":      err.Error(),
		})
		return []domain.Practitioner{}, nil
	}

	practitioners := decoded.Results
	if practitioners == nil {
		practitioners = []domain.Practitioner{}
	}

	a.logger.Info("marketplace.search.success", out.LogFields{
		"discipline": discipline,
		"count":      len(practitioners),
	})

	if a.cache != nil {
		a.cache.StorePractitioners(ctx, cacheKey, practitioners)
	}

	return practitioners, nil
}

type openingsResponse struct {
	Openings []struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"openings"`
}

// GetOpenings возвращает окна одного специалиста маркетплейса.
// Любой сбой дает пустой список; пустые записи кэша не переиспользуются.
func (a *MarketplaceAdapter) GetOpenings(ctx context.Context, staffMemberGuid string, locationID int) ([]domain.TimeSlot, error) {
	cacheKey := fmt.Sprintf("%s:%d", staffMemberGuid, locationID)

	if a.cache != nil {
		if slots, exists := a.cache.GetMarketplaceOpenings(ctx, cacheKey); exists {
			return slots, nil
		}
	}

	url := fmt.Sprintf("%s/practitioners/%s/location/%d/openings", a.baseURL, staffMemberGuid, locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}
	a.setBrowserHeaders(req)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("marketplace.openings.fetch_failed", out.LogFields{
			"staffGuid": staffMemberGuid,
			"error":     err.Error(),
		})
		return []domain.TimeSlot{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("marketplace.openings.fetch_failed", out.LogFields{
			"staffGuid":  staffMemberGuid,
			"locationId": locationID,
			"status":     resp.StatusCode,
		})
		return []domain.TimeSlot{}, nil
	}

	var decoded openingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		a.logger.Warn("marketplace.openings.decode_failed", out.LogFields{
			"staffGuid": staffMemberGuid,
			"error":     err.Error(),
		})
		return []domain.TimeSlot{}, nil
	}

	slots := make([]domain.TimeSlot, 0, len(decoded.Openings))
	for _, opening := range decoded.Openings {
		start, err := time.Parse(time.RFC3339, opening.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, opening.End)
		if err != nil {
			continue
		}
		slots = append(slots, domain.TimeSlot{Start: start, End: end})
	}

	a.logger.Debug("marketplace.openings.fetch_success", out.LogFields{
		"staffGuid":  staffMemberGuid,
		"locationId": locationID,
		"slotsCount": len(slots),
	})

	if a.cache != nil {
		a.cache.StoreMarketplaceOpenings(ctx, cacheKey, slots)
	}

	return slots, nil
}

// setBrowserHeaders выставляет заголовки, ожидаемые WAF маркетплейса.
// Узкое место осознанно изолировано здесь: при смене защиты наверху
// меняется только этот адаптер.
func (a *MarketplaceAdapter) setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-CA,en;q=0.9")
	req.Header.Set("Origin", a.origin)
}
