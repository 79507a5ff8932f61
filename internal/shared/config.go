package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr string
	RedisDB   int
	RedisPass string

	KafkaBrokers  []string
	BookingsTopic string

	RateLimitRPS int
	HTTPTimeout  time.Duration

	SeedWorkers int
	SeedCount   int
}

func Load() Config {
	// best effort: a missing .env is the normal case outside local dev
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		BookingsTopic: env("BOOKING_EVENTS_TOPIC", ""),
		RateLimitRPS:  atoi("RATE_LIMIT_RPS", 50),
		HTTPTimeout:   time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		SeedWorkers:   atoi("SEED_WORKERS", 8),
		SeedCount:     atoi("SEED_COUNT", 25),
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.KafkaBrokers = strings.Split(v, ",")
	}
	if c.BookingsTopic != "" && len(c.KafkaBrokers) == 0 {
		log.Warn().Msg("BOOKING_EVENTS_TOPIC set without KAFKA_BROKERS; events disabled")
	}
	return c
}

// EventsEnabled reports whether the broker side is configured end to end.
func (c Config) EventsEnabled() bool {
	return c.BookingsTopic != "" && len(c.KafkaBrokers) > 0
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
