package model

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationTentative  ReservationStatus = "tentative"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checkedIn"
	ReservationCheckedOut ReservationStatus = "checkedOut"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// ValidReservationStatus reports whether s is one of the recognized statuses.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationTentative, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// RateTypeID names a pricing tier selecting a nightly rate policy.
type RateTypeID string

const (
	RateTypeRack      RateTypeID = "rack"
	RateTypeCorporate RateTypeID = "corporate"
	RateTypeStudent   RateTypeID = "student"
	RateTypeSeasonal  RateTypeID = "seasonal"
)

// ValidRateType reports whether r is one of the recognized rate tiers.
func ValidRateType(r RateTypeID) bool {
	switch r {
	case RateTypeRack, RateTypeCorporate, RateTypeStudent, RateTypeSeasonal:
		return true
	}
	return false
}

// Reservation represents a stay on a room over the half-open interval
// [CheckIn, CheckOut). Reservations are never physically deleted;
// cancellation is a status change, which preserves historical reporting.
type Reservation struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	GuestID     string            `gorm:"index;size:36;not null" json:"guestId"`
	RoomID      string            `gorm:"index;size:36;not null" json:"roomId"`
	CheckIn     time.Time         `gorm:"not null" json:"checkIn"`
	CheckOut    time.Time         `gorm:"not null" json:"checkOut"`
	Status      ReservationStatus `gorm:"size:16;not null;index" json:"status"`
	RateType    RateTypeID        `gorm:"size:16;not null" json:"rateType"`
	TotalAmount float64           `gorm:"not null" json:"totalAmount"`
	DepositPaid float64           `gorm:"not null" json:"depositPaid"`
	Notes       string            `gorm:"size:2048" json:"notes,omitempty"`
	IsGroup     bool              `gorm:"not null" json:"isGroup"`
	GroupName   string            `gorm:"size:128" json:"groupName,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"createdAt"`
}
