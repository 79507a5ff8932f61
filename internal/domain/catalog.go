package domain

const (
	RoomSingle = "single"
	RoomDouble = "double"
	RoomSuite  = "suite"
)

// Room is a catalog entry. The catalog is fixed reference data: never
// created, updated, or deleted at runtime.
type Room struct {
	RoomType    string
	Capacity    int
	NightlyRate int
}

var (
	roomCapacity = map[string]int{
		RoomSingle: 1,
		RoomDouble: 2,
		RoomSuite:  4,
	}
	roomPrices = map[string]int{
		RoomSingle: 500,
		RoomDouble: 1000,
		RoomSuite:  2500,
	}
	// stable listing order for the rooms endpoint
	roomOrder = []string{RoomSingle, RoomDouble, RoomSuite}
)

// Capacity returns the required guest count for a room type. Guest count is
// enforced as an exact match, not an upper bound.
func Capacity(roomType string) (int, error) {
	c, ok := roomCapacity[roomType]
	if !ok {
		return 0, ErrUnknownRoomType
	}
	return c, nil
}

// NightlyRate returns the per-night price for a room type.
func NightlyRate(roomType string) (int, error) {
	p, ok := roomPrices[roomType]
	if !ok {
		return 0, ErrUnknownRoomType
	}
	return p, nil
}

// Rooms returns the full catalog in a stable order.
func Rooms() []Room {
	out := make([]Room, 0, len(roomOrder))
	for _, rt := range roomOrder {
		out = append(out, Room{RoomType: rt, Capacity: roomCapacity[rt], NightlyRate: roomPrices[rt]})
	}
	return out
}
