package domain

import "context"

// BookingStore abstracts the persistent key-value store holding Booking
// records keyed by identifier.
type BookingStore interface {
	// Put unconditionally inserts or overwrites a full record.
	Put(ctx context.Context, b Booking) error
	// Get returns the record, or ErrNotFound when absent.
	Get(ctx context.Context, id string) (Booking, error)
	// Delete removes a record; absent ids are not an error.
	Delete(ctx context.Context, id string) error
	// Scan walks all records. No pagination, no filtering, no ordering
	// guarantee.
	Scan(ctx context.Context) ([]Booking, error)
}

// EventPublisher emits booking lifecycle events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}
