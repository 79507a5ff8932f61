package domain

// ValidateBooking checks a raw input against the required-field and
// business-rule constraints, in order: all fields present and non-empty,
// room type resolves in the catalog, guest count equals the room's capacity
// exactly. The first violated rule wins.
//
// Date ordering and calendar validity are deliberately not checked here;
// a same-day or inverted range flows through to pricing untouched.
func ValidateBooking(in BookingInput) (BookingRequest, error) {
	if in.RoomType == "" {
		return BookingRequest{}, &ValidationError{Field: "roomType", Reason: "is required"}
	}
	if in.GuestCount <= 0 {
		return BookingRequest{}, &ValidationError{Field: "guestCount", Reason: "is required"}
	}
	if in.CheckInDate == "" {
		return BookingRequest{}, &ValidationError{Field: "checkInDate", Reason: "is required"}
	}
	if in.CheckOutDate == "" {
		return BookingRequest{}, &ValidationError{Field: "checkOutDate", Reason: "is required"}
	}

	capacity, err := Capacity(in.RoomType)
	if err != nil {
		return BookingRequest{}, &ValidationError{Field: "roomType", Reason: "must be one of single, double, suite"}
	}
	if in.GuestCount != capacity {
		return BookingRequest{}, &ValidationError{Field: "guestCount", Reason: "must match room capacity"}
	}

	return BookingRequest{
		RoomType:     in.RoomType,
		GuestCount:   in.GuestCount,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
	}, nil
}
