package model

// RoomStatus is the occupancy state shown on the rooms page.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is a bookable hotel room.  A room flips to occupied exactly when a
// reservation is committed against it; only available rooms are offered to
// the intake form, and that offer is the sole double-booking guard.
//
// Fields:
//  ID          – opaque identifier.
//  Number      – display label (treated as unique in lookups).
//  Type        – category label, e.g. "Superior", "Deluxe", "Suite".
//  Price       – nightly rate in whole rupiah, always positive.
//  Status      – occupancy state (available, occupied, maintenance).
//  Amenities   – feature labels, e.g. "wifi", "minibar".
//  Capacity    – maximum number of guests, always positive.
//  Description – free-text description shown on the room card.
type Room struct {
	ID          string
	Number      string
	Type        string
	Price       int64
	Status      RoomStatus
	Amenities   []string
	Capacity    int
	Description string
}
