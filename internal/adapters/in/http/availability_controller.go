package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/domain"
	"github.com/arbutus/availability-aggregator/internal/core/ports/in"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
)

type AvailabilityController struct {
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewAvailabilityController(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("AvailabilityController"),
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/search", c.search)
		api.GET("/availability", c.availability)
		api.GET("/discover", c.discover)
	}
}

func (c *AvailabilityController) search(ctx *gin.Context) {
	requestID := uuid.New().String()

	query := domain.SearchQuery{
		Service: ctx.Query("service"),
		Date:    ctx.Query("date"),
		Window:  ctx.Query("time"),
	}

	c.logger.Info("http.search.request", out.LogFields{
		"requestId": requestID,
		"service":   query.Service,
		"date":      query.Date,
		"time":      query.Window,
	})

	results, err := c.useCase.Search(ctx.Request.Context(), query)
	if err != nil {
		c.logger.Error("http.search.failed", out.LogFields{
			"requestId": requestID,
			"error":     err.Error(),
		})
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

func (c *AvailabilityController) availability(ctx *gin.Context) {
	requestID := uuid.New().String()

	providerID := ctx.Query("providerId")
	date := ctx.Query("date")

	if providerID == "" || date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "providerId and date are required"})
		return
	}

	c.logger.Info("http.availability.request", out.LogFields{
		"requestId":  requestID,
		"providerId": providerID,
		"date":       date,
	})

	slots, err := c.useCase.GetProviderAvailability(ctx.Request.Context(), providerID, date)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}

		c.logger.Error("http.availability.failed", out.LogFields{
			"requestId":  requestID,
			"providerId": providerID,
			"error":      err.Error(),
		})
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"providerId": providerID,
		"date":       date,
		"slots":      slots,
	})
}

func (c *AvailabilityController) discover(ctx *gin.Context) {
	requestID := uuid.New().String()

	query := domain.DiscoverQuery{
		Address:    ctx.Query("address"),
		Discipline: ctx.DefaultQuery("discipline", "massage_therapy"),
		RadiusKm:   10,
	}

	if radiusStr := ctx.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
		query.RadiusKm = radius
	}

	latStr, lngStr := ctx.Query("lat"), ctx.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
		query.Lat, query.Lng, query.HasCoords = lat, lng, true
	}

	c.logger.Info("http.discover.request", out.LogFields{
		"requestId":  requestID,
		"address":    query.Address,
		"discipline": query.Discipline,
		"radius":     query.RadiusKm,
	})

	result, err := c.useCase.Discover(ctx.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingLocation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "address or lat/lng is required"})
		case errors.Is(err, domain.ErrAddressNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Could not find this address"})
		default:
			c.logger.Error("http.discover.failed", out.LogFields{
				"requestId": requestID,
				"error":     err.Error(),
			})
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
