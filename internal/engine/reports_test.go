package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-pms-backend/internal/model"
)

func reportFixtures() ([]model.Room, []model.Reservation) {
	rooms := []model.Room{
		{ID: "r-101", Type: model.RoomTypeSingle},
		{ID: "r-201", Type: model.RoomTypeDouble},
		{ID: "r-301", Type: model.RoomTypeSuite},
	}
	reservations := []model.Reservation{
		{ID: "a", RoomID: "r-101", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), Status: model.ReservationCheckedIn, TotalAmount: 160},
		{ID: "b", RoomID: "r-201", CheckIn: day("2024-01-11"), CheckOut: day("2024-01-13"), Status: model.ReservationConfirmed, TotalAmount: 240},
		{ID: "c", RoomID: "r-301", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-11"), Status: model.ReservationCancelled, TotalAmount: 200},
	}
	return rooms, reservations
}

func TestRoomOccupancy(t *testing.T) {
	rooms, reservations := reportFixtures()

	assert.Equal(t, Occupancy{Occupied: 1, Total: 3}, RoomOccupancy(rooms, reservations, day("2024-01-10")))
	assert.Equal(t, Occupancy{Occupied: 2, Total: 3}, RoomOccupancy(rooms, reservations, day("2024-01-11")))
	// Checkout day is excluded by the half-open interval.
	assert.Equal(t, Occupancy{Occupied: 1, Total: 3}, RoomOccupancy(rooms, reservations, day("2024-01-12")))
	assert.Equal(t, Occupancy{Occupied: 0, Total: 3}, RoomOccupancy(rooms, reservations, day("2024-02-01")))
}

func TestArrivalsAndDepartures(t *testing.T) {
	_, reservations := reportFixtures()

	arrivals := ArrivalsOn(reservations, day("2024-01-10"))
	assert.Len(t, arrivals, 1) // the cancelled one is skipped
	assert.Equal(t, "a", arrivals[0].ID)

	departures := DeparturesOn(reservations, day("2024-01-12"))
	assert.Len(t, departures, 1)
	assert.Equal(t, "a", departures[0].ID)

	assert.Empty(t, ArrivalsOn(reservations, day("2024-03-01")))
}

func TestRevenue(t *testing.T) {
	rooms, reservations := reportFixtures()

	assert.Equal(t, 400.0, TotalRevenue(reservations))

	byType := RevenueByRoomType(rooms, reservations)
	assert.Equal(t, 160.0, byType[model.RoomTypeSingle])
	assert.Equal(t, 240.0, byType[model.RoomTypeDouble])
	assert.Zero(t, byType[model.RoomTypeSuite]) // cancelled revenue excluded
}
