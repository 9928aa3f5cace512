// README: Config loader with env defaults for HTTP, AI, weather upstreams, and images.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Maps struct {
		APIKey string
	}
	Weather struct {
		GeocodeBaseURL  string
		ForecastBaseURL string
	}
	Images struct {
		Dir string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDER_HTTP_ADDR", ":8080")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Weather.GeocodeBaseURL = envOrDefault("WANDER_GEOCODE_URL", "https://nominatim.openstreetmap.org")
	cfg.Weather.ForecastBaseURL = envOrDefault("WANDER_FORECAST_URL", "https://api.open-meteo.com")
	cfg.Images.Dir = envOrDefault("WANDER_IMAGES_DIR", "./trip-images")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}
