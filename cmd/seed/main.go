// Seeds the booking store with demo stays, useful for local development
// and load checks. Runs creations through the real service so every record
// is validated and priced the same way the API would.
package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"roomstay/internal/adapters/observability"
	"roomstay/internal/app"
	"roomstay/internal/domain"
	"roomstay/internal/shared"
	redisstore "roomstay/internal/storage/redis"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("count", cfg.SeedCount).
		Msg("seeder starting")

	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}
	log.Info().Msg("redis connection ok")

	svc := app.NewBookingService(redisstore.New(rdb))
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	rooms := domain.Rooms()
	today := time.Now().UTC()

	for i := 0; i < cfg.SeedCount; i++ {
		room := rooms[i%len(rooms)]
		// stays fan out into the future, 1..4 nights each
		checkIn := today.AddDate(0, 0, 3+i)
		checkOut := checkIn.AddDate(0, 0, 1+i%4)
		in := domain.BookingInput{
			RoomType:     room.RoomType,
			GuestCount:   room.Capacity,
			CheckInDate:  checkIn.Format(domain.DateLayout),
			CheckOutDate: checkOut.Format(domain.DateLayout),
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n int, in domain.BookingInput) {
			defer wg.Done()
			defer sem.Release(1)

			b, err := svc.CreateBooking(ctx, in)
			if err != nil {
				log.Warn().Int("n", n).Err(err).Msg("seed booking failed")
				return
			}
			log.Info().Int("n", n).Str("id", b.BookingID).
				Str("room", b.RoomType).Int("price", b.TotalPrice).
				Msg("seed booking ok")
		}(i, in)
	}

	wg.Wait()

	all, err := svc.ListBookings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list after seed failed")
	}
	fmt.Printf("store now holds %d bookings\n", len(all))
}
