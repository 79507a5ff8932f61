package redisstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"roomstay/internal/adapters/observability"
	"roomstay/internal/domain"
)

const keyPrefix = "booking:"

// NewClient builds the single process-wide Redis client. Construct once in
// main and inject it everywhere a store is needed.
func NewClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Store persists bookings as one hash per record under booking:<id>.
// String fields are stored as-is, numeric fields via strconv.
type Store struct{ c *redis.Client }

func New(c *redis.Client) *Store { return &Store{c: c} }

func key(id string) string { return keyPrefix + id }

func attrs(b domain.Booking) map[string]any {
	return map[string]any{
		"bookingId":    b.BookingID,
		"roomType":     b.RoomType,
		"guestCount":   strconv.Itoa(b.GuestCount),
		"checkInDate":  b.CheckInDate,
		"checkOutDate": b.CheckOutDate,
		"createdAt":    b.CreatedAt,
		"totalPrice":   strconv.Itoa(b.TotalPrice),
	}
}

func unmarshal(m map[string]string) (domain.Booking, error) {
	guests, err := strconv.Atoi(m["guestCount"])
	if err != nil {
		return domain.Booking{}, fmt.Errorf("guestCount %q: %w", m["guestCount"], err)
	}
	price, err := strconv.Atoi(m["totalPrice"])
	if err != nil {
		return domain.Booking{}, fmt.Errorf("totalPrice %q: %w", m["totalPrice"], err)
	}
	return domain.Booking{
		BookingID:    m["bookingId"],
		RoomType:     m["roomType"],
		GuestCount:   guests,
		CheckInDate:  m["checkInDate"],
		CheckOutDate: m["checkOutDate"],
		CreatedAt:    m["createdAt"],
		TotalPrice:   price,
	}, nil
}

// Put unconditionally inserts or overwrites the full record.
func (s *Store) Put(ctx context.Context, b domain.Booking) error {
	if err := s.c.HSet(ctx, key(b.BookingID), attrs(b)).Err(); err != nil {
		observability.ObserveStore("redis", "put", "error")
		return &domain.StorageError{Op: "put", Err: err}
	}
	observability.ObserveStore("redis", "put", "ok")
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Booking, error) {
	m, err := s.c.HGetAll(ctx, key(id)).Result()
	if err != nil {
		observability.ObserveStore("redis", "get", "error")
		return domain.Booking{}, &domain.StorageError{Op: "get", Err: err}
	}
	// HGETALL returns an empty map for absent keys rather than redis.Nil
	if len(m) == 0 {
		observability.ObserveStore("redis", "get", "miss")
		return domain.Booking{}, domain.ErrNotFound
	}
	b, err := unmarshal(m)
	if err != nil {
		observability.ObserveStore("redis", "get", "error")
		return domain.Booking{}, &domain.StorageError{Op: "get", Err: err}
	}
	observability.ObserveStore("redis", "get", "hit")
	return b, nil
}

// Delete is unconditional; deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.c.Del(ctx, key(id)).Err(); err != nil {
		observability.ObserveStore("redis", "delete", "error")
		return &domain.StorageError{Op: "delete", Err: err}
	}
	observability.ObserveStore("redis", "delete", "ok")
	return nil
}

// Scan walks every booking via cursor-based SCAN. Unbounded and unordered;
// fine at this system's scale, a ceiling beyond it.
func (s *Store) Scan(ctx context.Context) ([]domain.Booking, error) {
	out := []domain.Booking{}
	iter := s.c.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		m, err := s.c.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			observability.ObserveStore("redis", "scan", "error")
			return nil, &domain.StorageError{Op: "scan", Err: err}
		}
		if len(m) == 0 {
			// key deleted between SCAN and HGETALL
			continue
		}
		b, err := unmarshal(m)
		if err != nil {
			observability.ObserveStore("redis", "scan", "error")
			return nil, &domain.StorageError{Op: "scan", Err: err}
		}
		out = append(out, b)
	}
	if err := iter.Err(); err != nil {
		observability.ObserveStore("redis", "scan", "error")
		return nil, &domain.StorageError{Op: "scan", Err: err}
	}
	observability.ObserveStore("redis", "scan", "ok")
	return out, nil
}
