package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstay/internal/app"
	"roomstay/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	records map[string]domain.Booking
	puts    int
	failPut error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]domain.Booking{}}
}

func (f *fakeStore) Put(ctx context.Context, b domain.Booking) error {
	if f.failPut != nil {
		return f.failPut
	}
	f.puts++
	f.records[b.BookingID] = b
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (domain.Booking, error) {
	b, ok := f.records[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeStore) Scan(ctx context.Context) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range f.records {
		out = append(out, b)
	}
	return out, nil
}

type fakePublisher struct {
	published []string // event keys
	fail      error
}

func (f *fakePublisher) Publish(ctx context.Context, topic, key string, value any) error {
	if f.fail != nil {
		return f.fail
	}
	f.published = append(f.published, key)
	return nil
}

// ---- helpers ----

var fixedNow = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func newService(store domain.BookingStore, opts ...app.Option) *app.BookingService {
	base := []app.Option{
		app.WithClock(func() time.Time { return fixedNow }),
		app.WithIDGenerator(func() string { return "fixed-id" }),
	}
	return app.NewBookingService(store, append(base, opts...)...)
}

func doubleInput() domain.BookingInput {
	return domain.BookingInput{
		RoomType:     domain.RoomDouble,
		GuestCount:   2,
		CheckInDate:  "2024-01-10",
		CheckOutDate: "2024-01-12",
	}
}

// ---- tests ----

func TestCreateBooking_RoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	created, err := svc.CreateBooking(context.Background(), doubleInput())
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", created.BookingID)
	assert.Equal(t, 2000, created.TotalPrice) // 2 nights x 1000
	assert.Equal(t, "2024-01-01T09:30:00Z", created.CreatedAt)

	got, err := svc.GetBooking(context.Background(), created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateBooking_ValidationFailsBeforeStore(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	in := doubleInput()
	in.GuestCount = 3
	_, err := svc.CreateBooking(context.Background(), in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "guestCount", ve.Field)
	assert.Zero(t, store.puts, "invalid input must never reach the store")
}

func TestGetBooking_NeverInserted(t *testing.T) {
	svc := newService(newFakeStore())
	_, err := svc.GetBooking(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateBooking_RecomputesPrice(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	created, err := svc.CreateBooking(context.Background(), doubleInput())
	require.NoError(t, err)

	in := domain.BookingInput{
		RoomType:     domain.RoomSuite,
		GuestCount:   4,
		CheckInDate:  "2024-02-01",
		CheckOutDate: "2024-02-04",
	}
	updated, err := svc.UpdateBooking(context.Background(), created.BookingID, in)
	require.NoError(t, err)
	assert.Equal(t, created.BookingID, updated.BookingID)
	assert.Equal(t, 7500, updated.TotalPrice) // 3 nights x 2500

	got, err := svc.GetBooking(context.Background(), created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomSuite, got.RoomType, "update replaces the record wholesale")
}

// The put is blind: updating an id that was never created fabricates a
// record rather than returning not-found. Kept for parity with the original
// handlers.
func TestUpdateBooking_UnknownIDCreatesRecord(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	_, err := svc.UpdateBooking(context.Background(), "never-created", doubleInput())
	require.NoError(t, err)

	got, err := svc.GetBooking(context.Background(), "never-created")
	require.NoError(t, err)
	assert.Equal(t, 2000, got.TotalPrice)
}

func TestCancelBooking_OutsideWindow(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	// check-in is nine days out, well before the 2-day cutoff
	created, err := svc.CreateBooking(context.Background(), doubleInput())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), created.BookingID))

	_, err = svc.GetBooking(context.Background(), created.BookingID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cancellation is physical deletion")
}

func TestCancelBooking_CheckInTomorrow(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	in := doubleInput()
	in.CheckInDate = "2024-01-02" // tomorrow relative to fixedNow
	in.CheckOutDate = "2024-01-05"
	created, err := svc.CreateBooking(context.Background(), in)
	require.NoError(t, err)

	err = svc.CancelBooking(context.Background(), created.BookingID)
	assert.ErrorIs(t, err, domain.ErrCancellationWindow)

	// refusal leaves the record unchanged and retrievable
	got, err := svc.GetBooking(context.Background(), created.BookingID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCancelBooking_UnknownID(t *testing.T) {
	svc := newService(newFakeStore())
	err := svc.CancelBooking(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBookings_EmptyStore(t *testing.T) {
	svc := newService(newFakeStore())
	out, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestListRooms(t *testing.T) {
	svc := newService(newFakeStore())
	rooms := svc.ListRooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, domain.RoomSingle, rooms[0].RoomType)
	assert.Equal(t, 1000, rooms[1].NightlyRate)
}

func TestEvents_PublishedPerLifecycle(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := newService(store, app.WithEvents(pub, "bookings"))

	created, err := svc.CreateBooking(context.Background(), doubleInput())
	require.NoError(t, err)
	_, err = svc.UpdateBooking(context.Background(), created.BookingID, doubleInput())
	require.NoError(t, err)
	require.NoError(t, svc.CancelBooking(context.Background(), created.BookingID))

	assert.Len(t, pub.published, 3)
}

func TestEvents_BrokerFailureIsBestEffort(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{fail: errors.New("broker down")}
	svc := newService(store, app.WithEvents(pub, "bookings"))

	created, err := svc.CreateBooking(context.Background(), doubleInput())
	require.NoError(t, err)

	// booking persisted despite the failed publish
	_, err = svc.GetBooking(context.Background(), created.BookingID)
	assert.NoError(t, err)
}

func TestCreateBooking_StoreFailureSurfaces(t *testing.T) {
	store := newFakeStore()
	store.failPut = &domain.StorageError{Op: "put", Err: errors.New("connection refused")}
	svc := newService(store)

	_, err := svc.CreateBooking(context.Background(), doubleInput())
	var se *domain.StorageError
	assert.ErrorAs(t, err, &se)
}
