package engine

import "errors"

// The engine's failures are logical, not environmental: none of them is
// retried, and a failed operation must leave every entity unchanged.
var (
	// ErrInvalidDateRange signals a checkOut that is not strictly after
	// checkIn, raised at reservation construction/edit time.
	ErrInvalidDateRange = errors.New("check-out must be strictly after check-in")

	// ErrInvalidTransition signals a status change not permitted from the
	// reservation's current state.
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrUnresolvedReference signals a roomId or guestId that is not present
	// in the store.
	ErrUnresolvedReference = errors.New("referenced entity not found")

	// ErrGuestHasActiveReservations signals a guest deletion blocked by a
	// non-cancelled reservation.
	ErrGuestHasActiveReservations = errors.New("guest has active reservations")
)
