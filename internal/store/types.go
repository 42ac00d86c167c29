package store

import (
	"time"

	"hotel-pms-backend/internal/engine"
	"hotel-pms-backend/internal/model"
)

// NewReservation carries the staff input for creating a reservation.
// TotalAmount is derived from the stay length and the effective nightly rate
// when left at zero; NightlyRate is an optional staff override of the room's
// rate.
type NewReservation struct {
	GuestID     string                  `json:"guestId"`
	RoomID      string                  `json:"roomId"`
	CheckIn     time.Time               `json:"checkIn"`
	CheckOut    time.Time               `json:"checkOut"`
	Status      model.ReservationStatus `json:"status"`
	RateType    model.RateTypeID        `json:"rateType"`
	NightlyRate float64                 `json:"nightlyRate"`
	TotalAmount float64                 `json:"totalAmount"`
	DepositPaid float64                 `json:"depositPaid"`
	Notes       string                  `json:"notes"`
	IsGroup     bool                    `json:"isGroup"`
	GroupName   string                  `json:"groupName"`
}

// ReservationUpdate is a partial edit of a reservation's amounts and notes.
// Status is only changed through ApplyTransition.
type ReservationUpdate struct {
	RateType    *model.RateTypeID `json:"rateType"`
	TotalAmount *float64          `json:"totalAmount"`
	DepositPaid *float64          `json:"depositPaid"`
	Notes       *string           `json:"notes"`
}

// RoomUpdate is a partial edit of a room.
type RoomUpdate struct {
	Number   *string           `json:"number"`
	Type     *model.RoomType   `json:"type"`
	Status   *model.RoomStatus `json:"status"`
	Rate     *float64          `json:"rate"`
	Features *[]string         `json:"features"`
}

// GuestUpdate is a partial edit of a guest profile.
type GuestUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Nationality *string `json:"nationality"`
	Preferences *string `json:"preferences"`
}

// TransitionEffects carries the staff inputs for side-effecting transitions.
// Only check-out reads them: the inspection outcome sets the room's post-stay
// status (defaulting to dirty) and the charge fields finalize billing.
type TransitionEffects struct {
	Inspection        engine.InspectionOutcome `json:"inspection"`
	AdditionalCharges float64                  `json:"additionalCharges"`
	Discount          float64                  `json:"discount"`
	Notes             string                   `json:"notes"`
}

// TransitionResult reports the outcome of a committed transition. Billing is
// set for check-outs. RoomReadyID names the room that became available again,
// if any, so the caller can notify subscribed staff after commit.
type TransitionResult struct {
	Reservation model.Reservation `json:"reservation"`
	Billing     *engine.Billing   `json:"billing,omitempty"`
	RoomReadyID string            `json:"-"`
}
