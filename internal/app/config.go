package app

import (
	server "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http"
	astroApi "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/astroApi"
	redisAdapter "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/astro-transits/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const dotEnvPath = "deployments/local/.env"

type Config struct {
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`
	AstroAPI *astroApi.Config     `envconfig:"ASTRO_API"`
	Redis    *redisAdapter.Config `envconfig:"REDIS"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load(dotEnvPath)

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
