package engine

import (
	"time"

	"hotel-pms-backend/internal/model"
)

// Occupancy summarizes how many rooms are covered by an active reservation on
// a given day.
type Occupancy struct {
	Occupied int `json:"occupied"`
	Total    int `json:"total"`
}

// RoomOccupancy counts the non-cancelled reservations whose [checkIn,
// checkOut) interval covers the given day.
func RoomOccupancy(rooms []model.Room, reservations []model.Reservation, day time.Time) Occupancy {
	d := DayStart(day)
	occupied := 0
	for _, r := range reservations {
		if r.Status == model.ReservationCancelled {
			continue
		}
		if !d.Before(DayStart(r.CheckIn)) && d.Before(DayStart(r.CheckOut)) {
			occupied++
		}
	}
	return Occupancy{Occupied: occupied, Total: len(rooms)}
}

// ArrivalsOn returns the non-cancelled reservations checking in on the given
// day.
func ArrivalsOn(reservations []model.Reservation, day time.Time) []model.Reservation {
	var arrivals []model.Reservation
	for _, r := range reservations {
		if r.Status != model.ReservationCancelled && SameDay(r.CheckIn, day) {
			arrivals = append(arrivals, r)
		}
	}
	return arrivals
}

// DeparturesOn returns the non-cancelled reservations checking out on the
// given day.
func DeparturesOn(reservations []model.Reservation, day time.Time) []model.Reservation {
	var departures []model.Reservation
	for _, r := range reservations {
		if r.Status != model.ReservationCancelled && SameDay(r.CheckOut, day) {
			departures = append(departures, r)
		}
	}
	return departures
}

// TotalRevenue sums the room charges of every non-cancelled reservation.
func TotalRevenue(reservations []model.Reservation) float64 {
	var total float64
	for _, r := range reservations {
		if r.Status != model.ReservationCancelled {
			total += r.TotalAmount
		}
	}
	return total
}

// RevenueByRoomType groups non-cancelled reservation revenue by the booked
// room's type. Reservations referencing an unknown room are skipped.
func RevenueByRoomType(rooms []model.Room, reservations []model.Reservation) map[model.RoomType]float64 {
	typeByRoom := make(map[string]model.RoomType, len(rooms))
	for _, room := range rooms {
		typeByRoom[room.ID] = room.Type
	}

	revenue := make(map[model.RoomType]float64)
	for _, r := range reservations {
		if r.Status == model.ReservationCancelled {
			continue
		}
		if t, ok := typeByRoom[r.RoomID]; ok {
			revenue[t] += r.TotalAmount
		}
	}
	return revenue
}
