package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout    = 5 * time.Second
	defaultConnectTimeout = 15 * time.Second
	defaultPoolSize       = 10
	defaultChartTTL       = time.Minute
)

type Config struct {
	Enabled         bool          `envconfig:"ENABLED" default:"false"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"6379"`
	Username        string        `envconfig:"USERNAME"`
	Password        string        `envconfig:"PASSWORD"`
	Database        int           `envconfig:"DATABASE" default:"0"`
	MaxRetries      int           `envconfig:"MAX_RETRIES" default:"3"`
	DialTimeout     time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"1s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"1s"`
	PoolSize        int           `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns    int           `envconfig:"MIN_IDLE_CONNS" default:"2"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"15s"` // общий бюджет на ретраи при старте
	ChartTTL        time.Duration `envconfig:"CHART_TTL" default:"1m"`
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// TTL время жизни закэшированной карты
func (c *Config) TTL() time.Duration {
	if c.ChartTTL <= 0 {
		return defaultChartTTL
	}
	return c.ChartTTL
}

func (c *Config) options() *redis.Options {
	dialTimeout := c.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	return &redis.Options{
		Addr:            c.Addr(),
		Username:        c.Username,
		Password:        c.Password,
		DB:              c.Database,
		MaxRetries:      c.MaxRetries,
		DialTimeout:     dialTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		PoolSize:        poolSize,
		MinIdleConns:    c.MinIdleConns,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}

// NewConnection создаёт подключение к Redis, пингуя его с экспоненциальными ретраями
func (c *Config) NewConnection(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(c.options())

	connectTimeout := c.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = connectTimeout

	ping := func() error {
		return rdb.Ping(ctx).Err()
	}

	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
