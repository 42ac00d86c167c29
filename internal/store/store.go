package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-pms-backend/internal/engine"
	"hotel-pms-backend/internal/model"
)

// ErrRoomConflict signals an attempt to reserve a room that already has an
// active reservation overlapping the requested dates.
var ErrRoomConflict = errors.New("room already reserved for the requested dates")

// Store defines the entity store the engine and API layer operate through.
// Every mutating operation is transactional: a failed operation commits
// nothing.
type Store interface {
	DB() *gorm.DB

	ListRooms(ctx context.Context) ([]model.Room, error)
	ListGuests(ctx context.Context) ([]model.Guest, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	ListRatePlans(ctx context.Context) ([]model.RatePlan, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)

	CreateRoom(ctx context.Context, room model.Room) (model.Room, error)
	UpdateRoom(ctx context.Context, id string, upd RoomUpdate) (model.Room, error)
	CreateGuest(ctx context.Context, guest model.Guest) (model.Guest, error)
	UpdateGuest(ctx context.Context, id string, upd GuestUpdate) (model.Guest, error)
	DeleteGuest(ctx context.Context, id string) error

	CreateReservation(ctx context.Context, req NewReservation) (model.Reservation, error)
	UpdateReservation(ctx context.Context, id string, upd ReservationUpdate) (model.Reservation, error)
	AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType model.RoomType) ([]model.Room, error)
	ApplyTransition(ctx context.Context, reservationID string, target model.ReservationStatus, effects TransitionEffects) (TransitionResult, error)

	SeedDefaults(ctx context.Context) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Order("number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *gormStore) ListGuests(ctx context.Context) ([]model.Guest, error) {
	var guests []model.Guest
	if err := s.db.WithContext(ctx).
		Preload("BookingHistory", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *gormStore) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).Order("created_at").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *gormStore) ListRatePlans(ctx context.Context) ([]model.RatePlan, error) {
	var plans []model.RatePlan
	if err := s.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list rate plans: %w", err)
	}
	return plans, nil
}

func (s *gormStore) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	var r model.Reservation
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Reservation{}, fmt.Errorf("reservation %s: %w", id, engine.ErrUnresolvedReference)
		}
		return model.Reservation{}, fmt.Errorf("failed to load reservation %s: %w", id, err)
	}
	return r, nil
}

func (s *gormStore) CreateRoom(ctx context.Context, room model.Room) (model.Room, error) {
	if !model.ValidRoomType(room.Type) {
		return model.Room{}, fmt.Errorf("unknown room type %q", room.Type)
	}
	if room.Rate <= 0 {
		return model.Room{}, fmt.Errorf("nightly rate must be positive")
	}
	if room.Status == "" {
		room.Status = model.RoomAvailable
	}
	if !model.ValidRoomStatus(room.Status) {
		return model.Room{}, fmt.Errorf("unknown room status %q", room.Status)
	}
	room.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		return model.Room{}, fmt.Errorf("failed to create room %s: %w", room.Number, err)
	}
	return room, nil
}

func (s *gormStore) UpdateRoom(ctx context.Context, id string, upd RoomUpdate) (model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %s: %w", id, engine.ErrUnresolvedReference)
			}
			return err
		}
		if upd.Number != nil {
			room.Number = *upd.Number
		}
		if upd.Type != nil {
			if !model.ValidRoomType(*upd.Type) {
				return fmt.Errorf("unknown room type %q", *upd.Type)
			}
			room.Type = *upd.Type
		}
		if upd.Status != nil {
			if !model.ValidRoomStatus(*upd.Status) {
				return fmt.Errorf("unknown room status %q", *upd.Status)
			}
			room.Status = *upd.Status
		}
		if upd.Rate != nil {
			if *upd.Rate <= 0 {
				return fmt.Errorf("nightly rate must be positive")
			}
			room.Rate = *upd.Rate
		}
		if upd.Features != nil {
			room.Features = *upd.Features
		}
		return tx.Save(&room).Error
	})
	if err != nil {
		return model.Room{}, err
	}
	return room, nil
}

func (s *gormStore) CreateGuest(ctx context.Context, guest model.Guest) (model.Guest, error) {
	if guest.FirstName == "" || guest.LastName == "" {
		return model.Guest{}, fmt.Errorf("guest name is required")
	}
	guest.ID = uuid.NewString()
	guest.BookingHistory = nil
	if err := s.db.WithContext(ctx).Create(&guest).Error; err != nil {
		return model.Guest{}, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

func (s *gormStore) UpdateGuest(ctx context.Context, id string, upd GuestUpdate) (model.Guest, error) {
	var guest model.Guest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %s: %w", id, engine.ErrUnresolvedReference)
			}
			return err
		}
		if upd.FirstName != nil {
			guest.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			guest.LastName = *upd.LastName
		}
		if upd.Email != nil {
			guest.Email = *upd.Email
		}
		if upd.Phone != nil {
			guest.Phone = *upd.Phone
		}
		if upd.Address != nil {
			guest.Address = *upd.Address
		}
		if upd.Nationality != nil {
			guest.Nationality = *upd.Nationality
		}
		if upd.Preferences != nil {
			guest.Preferences = *upd.Preferences
		}
		return tx.Save(&guest).Error
	})
	if err != nil {
		return model.Guest{}, err
	}
	return guest, nil
}

// DeleteGuest removes a guest record. The deletion is blocked while the guest
// holds any non-cancelled reservation; reservations are never deleted as a
// side effect.
func (s *gormStore) DeleteGuest(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest model.Guest
		if err := tx.First(&guest, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %s: %w", id, engine.ErrUnresolvedReference)
			}
			return err
		}

		var active int64
		if err := tx.Model(&model.Reservation{}).
			Where("guest_id = ? AND status <> ?", id, model.ReservationCancelled).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed to count reservations for guest %s: %w", id, err)
		}
		if active > 0 {
			return fmt.Errorf("guest %s holds %d active reservations: %w", id, active, engine.ErrGuestHasActiveReservations)
		}

		if err := tx.Where("guest_id = ?", id).Delete(&model.BookingHistoryEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking history for guest %s: %w", id, err)
		}
		return tx.Delete(&guest).Error
	})
}

// CreateReservation validates the staff input, rejects conflicting active
// reservations on the room, derives the room charges when the caller did not
// supply them, and appends the reservation to the guest's booking history,
// all in one transaction.
func (s *gormStore) CreateReservation(ctx context.Context, req NewReservation) (model.Reservation, error) {
	checkIn := engine.DayStart(req.CheckIn)
	checkOut := engine.DayStart(req.CheckOut)
	if !checkIn.Before(checkOut) {
		return model.Reservation{}, engine.ErrInvalidDateRange
	}
	if req.Status == "" {
		req.Status = model.ReservationTentative
	}
	if !engine.ValidInitialStatus(req.Status) {
		return model.Reservation{}, fmt.Errorf("%q is not a valid initial status: %w", req.Status, engine.ErrInvalidTransition)
	}
	if req.RateType == "" {
		req.RateType = model.RateTypeRack
	}
	if !model.ValidRateType(req.RateType) {
		return model.Reservation{}, fmt.Errorf("unknown rate type %q", req.RateType)
	}
	if req.IsGroup != (req.GroupName != "") {
		return model.Reservation{}, fmt.Errorf("group name is required exactly when the reservation is a group booking")
	}
	if req.TotalAmount < 0 || req.DepositPaid < 0 {
		return model.Reservation{}, fmt.Errorf("amounts must not be negative")
	}

	var reservation model.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest model.Guest
		if err := tx.First(&guest, "id = ?", req.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %s: %w", req.GuestID, engine.ErrUnresolvedReference)
			}
			return err
		}
		var room model.Room
		if err := tx.First(&room, "id = ?", req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %s: %w", req.RoomID, engine.ErrUnresolvedReference)
			}
			return err
		}

		var existing []model.Reservation
		if err := tx.Where("room_id = ? AND status <> ?", room.ID, model.ReservationCancelled).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load reservations for room %s: %w", room.ID, err)
		}
		for _, other := range existing {
			if engine.Overlaps(checkIn, checkOut, other.CheckIn, other.CheckOut) {
				return fmt.Errorf("room %s is booked %s to %s: %w",
					room.Number,
					other.CheckIn.Format("2006-01-02"), other.CheckOut.Format("2006-01-02"),
					ErrRoomConflict)
			}
		}

		total := req.TotalAmount
		if total == 0 {
			rate := room.Rate
			if req.NightlyRate > 0 {
				rate = req.NightlyRate
			}
			total = engine.DeriveTotalAmount(checkIn, checkOut, rate)
		}

		reservation = model.Reservation{
			ID:          uuid.NewString(),
			GuestID:     guest.ID,
			RoomID:      room.ID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Status:      req.Status,
			RateType:    req.RateType,
			TotalAmount: total,
			DepositPaid: req.DepositPaid,
			Notes:       req.Notes,
			IsGroup:     req.IsGroup,
			GroupName:   req.GroupName,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		// Append-only back-reference on the guest.
		var entries int64
		if err := tx.Model(&model.BookingHistoryEntry{}).
			Where("guest_id = ?", guest.ID).Count(&entries).Error; err != nil {
			return err
		}
		entry := model.BookingHistoryEntry{
			GuestID:       guest.ID,
			Seq:           int(entries) + 1,
			ReservationID: reservation.ID,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

func (s *gormStore) UpdateReservation(ctx context.Context, id string, upd ReservationUpdate) (model.Reservation, error) {
	var reservation model.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservation %s: %w", id, engine.ErrUnresolvedReference)
			}
			return err
		}
		if upd.RateType != nil {
			if !model.ValidRateType(*upd.RateType) {
				return fmt.Errorf("unknown rate type %q", *upd.RateType)
			}
			reservation.RateType = *upd.RateType
		}
		if upd.TotalAmount != nil {
			if *upd.TotalAmount < 0 {
				return fmt.Errorf("total amount must not be negative")
			}
			reservation.TotalAmount = *upd.TotalAmount
		}
		if upd.DepositPaid != nil {
			if *upd.DepositPaid < 0 {
				return fmt.Errorf("deposit must not be negative")
			}
			reservation.DepositPaid = *upd.DepositPaid
		}
		if upd.Notes != nil {
			reservation.Notes = *upd.Notes
		}
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

// AvailableRooms answers the availability query by delegating to the pure
// engine filter over the current collections.
func (s *gormStore) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType model.RoomType) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Order("number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).
		Where("status <> ?", model.ReservationCancelled).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	return engine.AvailableRooms(rooms, reservations, engine.DayStart(checkIn), engine.DayStart(checkOut), roomType), nil
}

// ApplyTransition validates and applies a reservation status change together
// with its room-status side effects. The reservation update and any room
// update commit together or not at all.
func (s *gormStore) ApplyTransition(ctx context.Context, reservationID string, target model.ReservationStatus, effects TransitionEffects) (TransitionResult, error) {
	if !model.ValidReservationStatus(target) {
		return TransitionResult{}, fmt.Errorf("unknown status %q: %w", target, engine.ErrInvalidTransition)
	}

	var result TransitionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation model.Reservation
		if err := tx.First(&reservation, "id = ?", reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservation %s: %w", reservationID, engine.ErrUnresolvedReference)
			}
			return err
		}

		if !engine.CanTransition(reservation.Status, target) {
			return fmt.Errorf("%s -> %s: %w", reservation.Status, target, engine.ErrInvalidTransition)
		}

		if target == model.ReservationCheckedOut {
			var room model.Room
			if err := tx.First(&room, "id = ?", reservation.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("room %s: %w", reservation.RoomID, engine.ErrUnresolvedReference)
				}
				return err
			}

			inspection := effects.Inspection
			if inspection == "" {
				inspection = engine.InspectionDirty
			}
			status, ok := inspection.RoomStatus()
			if !ok {
				return fmt.Errorf("unknown inspection outcome %q", inspection)
			}
			room.Status = status
			if err := tx.Save(&room).Error; err != nil {
				return fmt.Errorf("failed to update room %s: %w", room.ID, err)
			}
			if status == model.RoomAvailable {
				result.RoomReadyID = room.ID
			}

			billing := engine.ComputeBilling(reservation, effects.AdditionalCharges, effects.Discount)
			result.Billing = &billing

			if effects.Notes != "" {
				reservation.Notes = appendCheckoutNotes(reservation.Notes, effects.Notes)
			}
		}

		reservation.Status = target
		if err := tx.Save(&reservation).Error; err != nil {
			return fmt.Errorf("failed to update reservation %s: %w", reservation.ID, err)
		}
		result.Reservation = reservation
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}
	return result, nil
}

func appendCheckoutNotes(existing, remarks string) string {
	if existing == "" {
		return "Checkout Notes: " + remarks
	}
	return existing + "\nCheckout Notes: " + remarks
}
