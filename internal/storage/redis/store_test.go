package redisstore_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"roomstay/internal/domain"
	redisstore "roomstay/internal/storage/redis"
)

func newStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisstore.New(redisstore.NewClient(mr.Addr(), "", 0)), mr
}

func sample(id string) domain.Booking {
	return domain.Booking{
		BookingID:    id,
		RoomType:     domain.RoomDouble,
		GuestCount:   2,
		CheckInDate:  "2024-01-10",
		CheckOutDate: "2024-01-12",
		CreatedAt:    "2024-01-01T09:30:00Z",
		TotalPrice:   2000,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	want := sample("b-1")
	if err := store.Put(ctx, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "b-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestGet_Absent(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Get(context.Background(), "never-created")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPut_OverwritesWholesale(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	first := sample("b-2")
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second := first
	second.RoomType = domain.RoomSuite
	second.GuestCount = 4
	second.TotalPrice = 5000
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err := store.Get(ctx, "b-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != second {
		t.Fatalf("expected overwritten record, got %+v", got)
	}
}

func TestDelete_AbsentIsNoError(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	if err := store.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	if err := store.Put(ctx, sample("b-3")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "b-3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "b-3"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestScan(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	// empty store scans to an empty slice, not an error
	got, err := store.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty scan, got %d records", len(got))
	}

	ids := []string{"s-1", "s-2", "s-3"}
	for _, id := range ids {
		if err := store.Put(ctx, sample(id)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	// unrelated keys must not leak into the scan
	mr.Set("session:abc", "1")

	got, err = store.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	var gotIDs []string
	for _, b := range got {
		gotIDs = append(gotIDs, b.BookingID)
	}
	sort.Strings(gotIDs)
	if len(gotIDs) != 3 || gotIDs[0] != "s-1" || gotIDs[1] != "s-2" || gotIDs[2] != "s-3" {
		t.Fatalf("unexpected scan ids: %v", gotIDs)
	}
}

func TestGet_CorruptRecordIsStorageError(t *testing.T) {
	store, mr := newStore(t)
	mr.HSet("booking:bad", "bookingId", "bad", "guestCount", "two", "totalPrice", "2000")

	_, err := store.Get(context.Background(), "bad")
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}
