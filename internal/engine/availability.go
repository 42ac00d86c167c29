package engine

import (
	"time"

	"hotel-pms-backend/internal/model"
)

// AvailableRooms returns the rooms free for the half-open range
// [checkIn, checkOut), optionally filtered by room type. A room qualifies
// when its housekeeping status is available (a manual override by staff takes
// precedence even with zero conflicting reservations) and no non-cancelled
// reservation on it overlaps the requested range.
//
// The query is total: a violated checkIn < checkOut constraint yields no
// rooms rather than an error.
func AvailableRooms(rooms []model.Room, reservations []model.Reservation, checkIn, checkOut time.Time, roomType model.RoomType) []model.Room {
	if !checkIn.Before(checkOut) {
		return nil
	}

	byRoom := make(map[string][]model.Reservation, len(rooms))
	for _, r := range reservations {
		if r.Status == model.ReservationCancelled {
			continue
		}
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	var available []model.Room
	for _, room := range rooms {
		if roomType != "" && room.Type != roomType {
			continue
		}
		if room.Status != model.RoomAvailable {
			continue
		}
		if hasConflict(byRoom[room.ID], checkIn, checkOut) {
			continue
		}
		available = append(available, room)
	}
	return available
}

func hasConflict(reservations []model.Reservation, checkIn, checkOut time.Time) bool {
	for _, r := range reservations {
		if Overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			return true
		}
	}
	return false
}
