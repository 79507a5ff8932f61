package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"roomstay/internal/adapters/observability"
	"roomstay/internal/domain"
)

// BookingService orchestrates validation, pricing, the cancellation policy,
// and the store per operation. Validation always runs before any store
// interaction, so invalid input never causes a partial write.
type BookingService struct {
	store  domain.BookingStore
	events domain.EventPublisher // optional; nil disables publishing
	topic  string

	now   func() time.Time
	newID func() string
}

type Option func(*BookingService)

// WithEvents attaches a lifecycle-event publisher. Publishing is best
// effort: a broker failure is logged, never surfaced to the caller.
func WithEvents(p domain.EventPublisher, topic string) Option {
	return func(s *BookingService) {
		s.events = p
		s.topic = topic
	}
}

// WithClock overrides the time source (cancellation window, createdAt).
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// WithIDGenerator overrides booking-id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *BookingService) { s.newID = gen }
}

func NewBookingService(store domain.BookingStore, opts ...Option) *BookingService {
	s := &BookingService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) CreateBooking(ctx context.Context, in domain.BookingInput) (domain.Booking, error) {
	req, err := domain.ValidateBooking(in)
	if err != nil {
		return domain.Booking{}, err
	}
	price, err := domain.TotalPrice(req.RoomType, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return domain.Booking{}, err
	}
	b := domain.Booking{
		BookingID:    s.newID(),
		RoomType:     req.RoomType,
		GuestCount:   req.GuestCount,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
		TotalPrice:   price,
	}
	if err := s.store.Put(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	observability.ObserveBooking("created")
	s.publish(ctx, "booking_created", b)
	return b, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	return s.store.Get(ctx, id)
}

// UpdateBooking replaces the record wholesale under id; it is not a partial
// patch, and the price is recomputed from the new stay. The put is blind:
// updating an id that was never created writes a fresh record instead of
// failing with not-found, matching the original handler behavior.
func (s *BookingService) UpdateBooking(ctx context.Context, id string, in domain.BookingInput) (domain.Booking, error) {
	req, err := domain.ValidateBooking(in)
	if err != nil {
		return domain.Booking{}, err
	}
	price, err := domain.TotalPrice(req.RoomType, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return domain.Booking{}, err
	}
	b := domain.Booking{
		BookingID:    id,
		RoomType:     req.RoomType,
		GuestCount:   req.GuestCount,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
		TotalPrice:   price,
	}
	if err := s.store.Put(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	observability.ObserveBooking("updated")
	s.publish(ctx, "booking_updated", b)
	return b, nil
}

// CancelBooking deletes the record permanently once the policy allows it.
// There is no cancelled status kept; deletion is the only way out. The
// read-then-delete is not atomic, last writer wins.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CancellationAllowed(b.CheckInDate, s.now()) {
		return domain.ErrCancellationWindow
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	observability.ObserveBooking("cancelled")
	s.publish(ctx, "booking_cancelled", b)
	return nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.store.Scan(ctx)
}

func (s *BookingService) ListRooms() []domain.Room {
	return domain.Rooms()
}

type bookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"bookingId"`
	RoomType   string `json:"roomType"`
	TotalPrice int    `json:"totalPrice"`
	OccurredAt string `json:"occurredAt"`
}

func (s *BookingService) publish(ctx context.Context, eventType string, b domain.Booking) {
	if s.events == nil || s.topic == "" {
		return
	}
	evt := bookingEvent{
		Type:       eventType,
		BookingID:  b.BookingID,
		RoomType:   b.RoomType,
		TotalPrice: b.TotalPrice,
		OccurredAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.Publish(ctx, s.topic, b.BookingID, evt); err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("id", b.BookingID).Msg("event publish failed")
	}
}
