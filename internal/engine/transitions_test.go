package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-pms-backend/internal/model"
)

var allStatuses = []model.ReservationStatus{
	model.ReservationTentative,
	model.ReservationConfirmed,
	model.ReservationCheckedIn,
	model.ReservationCheckedOut,
	model.ReservationCancelled,
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]model.ReservationStatus]bool{
		{model.ReservationTentative, model.ReservationConfirmed}: true,
		{model.ReservationTentative, model.ReservationCheckedIn}: true,
		{model.ReservationTentative, model.ReservationCancelled}: true,
		{model.ReservationConfirmed, model.ReservationCheckedIn}: true,
		{model.ReservationConfirmed, model.ReservationCancelled}: true,
		{model.ReservationCheckedIn, model.ReservationCheckedOut}: true,
		{model.ReservationCheckedIn, model.ReservationCancelled}:  true,
	}

	// Exhaustive over the full status product: everything not in the table
	// is rejected.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			assert.Equal(t, allowed[[2]model.ReservationStatus{from, to}],
				CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(model.ReservationCheckedOut))
	assert.True(t, IsTerminal(model.ReservationCancelled))
	assert.False(t, IsTerminal(model.ReservationTentative))
	assert.False(t, IsTerminal(model.ReservationConfirmed))
	assert.False(t, IsTerminal(model.ReservationCheckedIn))

	// No transition leaves a terminal state.
	for _, to := range allStatuses {
		assert.False(t, CanTransition(model.ReservationCheckedOut, to), "checkedOut -> %s", to)
		assert.False(t, CanTransition(model.ReservationCancelled, to), "cancelled -> %s", to)
	}
}

func TestValidInitialStatus(t *testing.T) {
	assert.True(t, ValidInitialStatus(model.ReservationTentative))
	assert.True(t, ValidInitialStatus(model.ReservationConfirmed))
	assert.False(t, ValidInitialStatus(model.ReservationCheckedIn))
	assert.False(t, ValidInitialStatus(model.ReservationCheckedOut))
	assert.False(t, ValidInitialStatus(model.ReservationCancelled))
}

func TestInspectionOutcomeRoomStatus(t *testing.T) {
	testCases := []struct {
		outcome  InspectionOutcome
		expected model.RoomStatus
		ok       bool
	}{
		{InspectionClean, model.RoomAvailable, true},
		{InspectionDirty, model.RoomDirty, true},
		{InspectionMaintenance, model.RoomMaintenance, true},
		{InspectionOutcome("spotless"), "", false},
	}

	for _, tc := range testCases {
		status, ok := tc.outcome.RoomStatus()
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.expected, status)
	}
}
