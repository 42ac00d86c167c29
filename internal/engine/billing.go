package engine

import (
	"time"

	"hotel-pms-backend/internal/model"
)

// Billing is the settlement summary computed at checkout time.
type Billing struct {
	Subtotal           float64 `json:"subtotal"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

// ComputeBilling computes the subtotal and outstanding balance for a
// reservation. A positive balance is the amount due from the guest, a
// negative balance is a refund owed to the guest, and zero means settled.
// The raw arithmetic result is reported as-is; nothing is clamped.
func ComputeBilling(r model.Reservation, additionalCharges, discount float64) Billing {
	subtotal := r.TotalAmount + additionalCharges - discount
	return Billing{
		Subtotal:           subtotal,
		OutstandingBalance: subtotal - r.DepositPaid,
	}
}

// DeriveTotalAmount computes a reservation's room charges as nights times the
// effective nightly rate. The rate is either the room's nightly rate or a
// staff-supplied override.
func DeriveTotalAmount(checkIn, checkOut time.Time, nightlyRate float64) float64 {
	return float64(Nights(checkIn, checkOut)) * nightlyRate
}
