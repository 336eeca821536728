package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/arbutus/availability-aggregator/internal/adapters/in/http"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/cache"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/calendarfeed"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/geocoder"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/janeapp"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/logger"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/marketplace"
	"github.com/arbutus/availability-aggregator/internal/adapters/out/providerstore"
	"github.com/arbutus/availability-aggregator/internal/config"
	"github.com/arbutus/availability-aggregator/internal/core/ports/out"
	"github.com/arbutus/availability-aggregator/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, cfg.IsLocal())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":      cfg.App.Version,
		"env":          cfg.App.Env,
		"timezone":     cfg.App.Timezone,
		"cacheEnabled": cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Кэш опционален: адаптеры работают и без него
	var cachePort out.CachePort
	if cfg.Cache.Enabled {
		cacheAdapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cachePort = cacheAdapter
	}

	// Каталог провайдеров — обязателен
	providerStore, err := providerstore.NewFileStore(cfg.Providers.File, mainLogger.WithModule("ProviderStore"))
	if err != nil {
		log.Error("app.providers.load_failed", out.LogFields{
			"file":  cfg.Providers.File,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Исходящие адаптеры источников
	calendarFeedAdapter := calendarfeed.NewCalendarFeedAdapter(cachePort, mainLogger.WithModule("CalendarFeedAdapter"))
	janeAdapter := janeapp.NewJaneAdapter(cfg, cachePort, mainLogger.WithModule("JaneAdapter"))
	marketplaceAdapter := marketplace.NewMarketplaceAdapter(cfg, cachePort, mainLogger.WithModule("MarketplaceAdapter"))
	geocoderAdapter := geocoder.NewNominatimAdapter(cfg, mainLogger.WithModule("GeocoderAdapter"))

	// Ядро
	availabilityService := services.NewAvailabilityService(
		providerStore,
		calendarFeedAdapter,
		janeAdapter,
		marketplaceAdapter,
		geocoderAdapter,
		cfg,
		mainLogger,
	)

	// HTTP сервер
	router := gin.Default()
	controller := http.NewAvailabilityController(availabilityService, cfg, mainLogger)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
