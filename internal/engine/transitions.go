package engine

import "hotel-pms-backend/internal/model"

// InspectionOutcome is the housekeeping judgment recorded at checkout that
// sets the room's post-stay status.
type InspectionOutcome string

const (
	InspectionClean       InspectionOutcome = "clean"
	InspectionDirty       InspectionOutcome = "dirty"
	InspectionMaintenance InspectionOutcome = "maintenance"
)

// RoomStatus maps the inspection outcome to the room status it implies.
func (o InspectionOutcome) RoomStatus() (model.RoomStatus, bool) {
	switch o {
	case InspectionClean:
		return model.RoomAvailable, true
	case InspectionDirty:
		return model.RoomDirty, true
	case InspectionMaintenance:
		return model.RoomMaintenance, true
	}
	return "", false
}

// transitions is the set of permitted manual status changes. checkedOut and
// cancelled are terminal.
var transitions = map[model.ReservationStatus][]model.ReservationStatus{
	model.ReservationTentative: {
		model.ReservationConfirmed,
		model.ReservationCheckedIn,
		model.ReservationCancelled,
	},
	model.ReservationConfirmed: {
		model.ReservationCheckedIn,
		model.ReservationCancelled,
	},
	model.ReservationCheckedIn: {
		model.ReservationCheckedOut,
		model.ReservationCancelled,
	},
}

// CanTransition reports whether a reservation may move from one status to
// another.
func CanTransition(from, to model.ReservationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted out of s.
func IsTerminal(s model.ReservationStatus) bool {
	return len(transitions[s]) == 0 && model.ValidReservationStatus(s)
}

// ValidInitialStatus reports whether s may be chosen at reservation creation
// time.
func ValidInitialStatus(s model.ReservationStatus) bool {
	return s == model.ReservationTentative || s == model.ReservationConfirmed
}
