package astroApi

import "time"

type Config struct {
	BaseURL    string        `envconfig:"BASE_URL" required:"true"`
	ApiVersion string        `envconfig:"VERSION" default:"api/v4"`
	ApiKey     string        `envconfig:"API_KEY"`
	SkipSSL    string        `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RateLimit  float64       `envconfig:"RATE_LIMIT" default:"5"` // запросов в секунду
	RateBurst  int           `envconfig:"RATE_BURST" default:"5"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
