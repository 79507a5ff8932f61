package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "roomstay/internal/adapters/http_server"
	"roomstay/internal/adapters/kafka"
	"roomstay/internal/adapters/observability"
	"roomstay/internal/app"
	"roomstay/internal/shared"
	redisstore "roomstay/internal/storage/redis"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// one redis client per process, injected everywhere a store is needed
	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store := redisstore.New(rdb)

	opts := []app.Option{}
	if cfg.EventsEnabled() {
		producer := kafka.NewProducer(cfg.KafkaBrokers)
		defer func() { _ = producer.Close() }()
		opts = append(opts, app.WithEvents(producer, cfg.BookingsTopic))
		log.Info().Str("topic", cfg.BookingsTopic).Msg("booking events enabled")
	}
	svc := app.NewBookingService(store, opts...)

	// http
	srv := server.New(cfg.HTTPTimeout, cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Svc: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
