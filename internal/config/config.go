package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Vancouver"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Providers struct {
		File string `env:"PROVIDERS_FILE" envDefault:"data/providers.json"`
	}

	Jane struct {
		BaseDomain string `env:"JANE_BASE_DOMAIN" envDefault:"janeapp.com"`
		NumDays    int    `env:"JANE_NUM_DAYS" envDefault:"1"`
	}

	Marketplace struct {
		BaseURL    string  `env:"MARKETPLACE_BASE_URL" envDefault:"https://marketplace-api.janeapp.net"`
		Origin     string  `env:"MARKETPLACE_ORIGIN" envDefault:"https://discover.jane.app"`
		UserAgent  string  `env:"MARKETPLACE_USER_AGENT" envDefault:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"`
		CenterLat  float64 `env:"MARKETPLACE_CENTER_LAT" envDefault:"49.3201"`
		CenterLng  float64 `env:"MARKETPLACE_CENTER_LNG" envDefault:"-123.0724"`
		RadiusKm   float64 `env:"MARKETPLACE_RADIUS_KM" envDefault:"20"`
		MaxResults int     `env:"MARKETPLACE_MAX_RESULTS" envDefault:"30"`
	}

	Geocoder struct {
		BaseURL   string `env:"GEOCODER_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
		UserAgent string `env:"GEOCODER_USER_AGENT" envDefault:"ArbutusBooking/1.0"`
	}

	Cache struct {
		Enabled     bool          `env:"CACHE_ENABLED" envDefault:"true"`
		Size        int           `env:"CACHE_SIZE" envDefault:"1000"`
		FeedTTL     time.Duration `env:"CACHE_FEED_TTL" envDefault:"15m"`
		OpeningsTTL time.Duration `env:"CACHE_OPENINGS_TTL" envDefault:"5m"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
