package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(string, out.LogFields)             {}
func (l nopLogger) Info(string, out.LogFields)              {}
func (l nopLogger) Warn(string, out.LogFields)              {}
func (l nopLogger) Error(string, out.LogFields)             {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

type stubUseCase struct {
	searchFn       func(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error)
	availabilityFn func(ctx context.Context, providerID string, date string) ([]domain.TimeSlot, error)
	discoverFn     func(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error)
}

func (s *stubUseCase) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error) {
	return s.searchFn(ctx, query)
}

func (s *stubUseCase) GetProviderAvailability(ctx context.Context, providerID string, date string) ([]domain.TimeSlot, error) {
	return s.availabilityFn(ctx, providerID, date)
}

func (s *stubUseCase) Discover(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
	return s.discoverFn(ctx, query)
}

func newTestRouter(useCase *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewAvailabilityController(useCase, &config.Config{}, nopLogger{})
	controller.RegisterRoutes(router)

	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSearch_PassesQueryThrough(t *testing.T) {
	useCase := &stubUseCase{
		searchFn: func(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error) {
			assert.Equal(t, "massage", query.Service)
			assert.Equal(t, "2030-06-17", query.Date)
			assert.Equal(t, "morning", query.Window)
			return []domain.ProviderAvailability{}, nil
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/search?service=massage&date=2030-06-17&time=morning")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Results []domain.ProviderAvailability `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Results)
}

func TestSearch_InvalidDateIs400(t *testing.T) {
	useCase := &stubUseCase{
		searchFn: func(ctx context.Context, query domain.SearchQuery) ([]domain.ProviderAvailability, error) {
			return nil, assert.AnError
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/search?date=garbage")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAvailability_MissingParamsIs400(t *testing.T) {
	useCase := &stubUseCase{}

	assert.Equal(t, http.StatusBadRequest, doRequest(newTestRouter(useCase), "/api/v1/availability").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(newTestRouter(useCase), "/api/v1/availability?providerId=p1").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(newTestRouter(useCase), "/api/v1/availability?date=2030-06-17").Code)
}

func TestAvailability_UnknownProviderIs404(t *testing.T) {
	useCase := &stubUseCase{
		availabilityFn: func(ctx context.Context, providerID string, date string) ([]domain.TimeSlot, error) {
			return nil, domain.ErrProviderNotFound
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/availability?providerId=ghost&date=2030-06-17")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAvailability_ReturnsSlots(t *testing.T) {
	useCase := &stubUseCase{
		availabilityFn: func(ctx context.Context, providerID string, date string) ([]domain.TimeSlot, error) {
			assert.Equal(t, "p1", providerID)
			assert.Equal(t, "2030-06-17", date)
			return []domain.TimeSlot{}, nil
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/availability?providerId=p1&date=2030-06-17")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDiscover_MissingLocationIs400(t *testing.T) {
	useCase := &stubUseCase{
		discoverFn: func(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
			return nil, domain.ErrMissingLocation
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/discover")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDiscover_UnresolvableAddressIs404(t *testing.T) {
	useCase := &stubUseCase{
		discoverFn: func(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
			return nil, domain.ErrAddressNotFound
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/discover?address=nowhere")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDiscover_ParsesCoordinatesAndRadius(t *testing.T) {
	useCase := &stubUseCase{
		discoverFn: func(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
			assert.True(t, query.HasCoords)
			assert.Equal(t, 49.32, query.Lat)
			assert.Equal(t, -123.07, query.Lng)
			assert.Equal(t, 15.0, query.RadiusKm)
			assert.Equal(t, "physiotherapy", query.Discipline)
			return &domain.DiscoverResult{Practitioners: []domain.Practitioner{}}, nil
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/discover?lat=49.32&lng=-123.07&radius=15&discipline=physiotherapy")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDiscover_DefaultRadiusAndDiscipline(t *testing.T) {
	useCase := &stubUseCase{
		discoverFn: func(ctx context.Context, query domain.DiscoverQuery) (*domain.DiscoverResult, error) {
			assert.Equal(t, 10.0, query.RadiusKm)
			assert.Equal(t, "massage_therapy", query.Discipline)
			return &domain.DiscoverResult{}, nil
		},
	}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/discover?address=123+Lonsdale+Ave")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDiscover_InvalidRadiusIs400(t *testing.T) {
	useCase := &stubUseCase{}

	assert.Equal(t, http.StatusBadRequest, doRequest(newTestRouter(useCase), "/api/v1/discover?address=x&radius=-5").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(newTestRouter(useCase), "/api/v1/discover?address=x&radius=wide").Code)
}

func TestDiscover_InvalidCoordinatesIs400(t *testing.T) {
	useCase := &stubUseCase{}

	recorder := doRequest(newTestRouter(useCase), "/api/v1/discover?lat=north&lng=west")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
