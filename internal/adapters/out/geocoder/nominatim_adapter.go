package geocoder

import (
	"context"
	"encoding/json"
	"net/http"
	nurl "net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

// NominatimAdapter — геокодер на Nominatim (бесплатный, без ключа).
// Политика сервиса требует не более одного запроса в секунду и
// осмысленный User-Agent.
type NominatimAdapter struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	logger    out.LoggerPort
}

func NewNominatimAdapter(cfg *config.Config, logger out.LoggerPort) *NominatimAdapter {
	return &NominatimAdapter{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   cfg.Geocoder.BaseURL,
		userAgent: cfg.Geocoder.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		logger:    logger,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode возвращает координаты адреса или nil, если адрес не найден.
// Один вызов, без ретраев; сбои трактуются как "не найдено".
func (a *NominatimAdapter) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := nurl.Values{}
	query.Add("q", address)
	query.Add("format", "json")
	query.Add("limit", "1")
	query.Add("countrycodes", "ca")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("geocoder.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("geocoder.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, nil
	}

	return &domain.Coordinates{Latitude: lat, Longitude: lng}, nil
}
