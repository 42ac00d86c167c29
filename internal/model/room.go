package model

// RoomType classifies a room for rate and availability filtering.
type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeDouble    RoomType = "double"
	RoomTypeSuite     RoomType = "suite"
	RoomTypeDormitory RoomType = "dormitory"
)

// ValidRoomType reports whether t is one of the recognized room types.
func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDormitory:
		return true
	}
	return false
}

// RoomStatus is the housekeeping state of a room. It is advisory for
// availability: the no-double-booking guarantee comes from reservation
// overlap, not from this field alone.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomDirty       RoomStatus = "dirty"
	RoomMaintenance RoomStatus = "maintenance"
)

// ValidRoomStatus reports whether s is one of the recognized room statuses.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomDirty, RoomMaintenance:
		return true
	}
	return false
}

// Room represents a bookable hotel room.
type Room struct {
	ID       string     `gorm:"primaryKey;size:36" json:"id"`
	Number   string     `gorm:"uniqueIndex;size:16;not null" json:"number"`
	Type     RoomType   `gorm:"size:16;not null" json:"type"`
	Status   RoomStatus `gorm:"size:16;not null" json:"status"`
	Rate     float64    `gorm:"not null" json:"rate"`
	Features []string   `gorm:"serializer:json" json:"features"`
}
