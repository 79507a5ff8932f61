package domain

// Booking is the persisted reservation record: one room, one stay.
// Dates are carried as ISO YYYY-MM-DD strings exactly as received;
// they are not parsed or order-checked at the boundary.
type Booking struct {
	BookingID    string
	RoomType     string
	GuestCount   int
	CheckInDate  string
	CheckOutDate string
	CreatedAt    string // RFC3339, set once at creation
	TotalPrice   int
}

// BookingInput is the raw client payload before validation.
type BookingInput struct {
	RoomType     string
	GuestCount   int
	CheckInDate  string
	CheckOutDate string
}

// BookingRequest is a validated input: room type resolves in the catalog
// and the guest count matches its capacity.
type BookingRequest struct {
	RoomType     string
	GuestCount   int
	CheckInDate  string
	CheckOutDate string
}
