package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-pms-backend/config"
	"hotel-pms-backend/internal/api"
	"hotel-pms-backend/internal/model"
	"hotel-pms-backend/internal/store"
)

// body is shorthand for JSON request payloads.
type body = map[string]any

// TestReservationLifecycle walks one stay through the whole API surface:
// profile creation, availability lookup, booking, conflict rejection,
// check-in, billing preview, check-out with inspection, and the guest
// deletion guard.
func TestReservationLifecycle(t *testing.T) {
	// --- Test Setup ---

	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to the in-memory database: %v", err)
	}
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	// Run database migrations.
	err = testDB.AutoMigrate(
		&model.Room{},
		&model.Guest{},
		&model.BookingHistoryEntry{},
		&model.Reservation{},
		&model.RatePlan{},
		&model.PushSubscription{},
	)
	require.NoError(t, err)

	// 2. Instantiate the store and router. Rate limits are raised so the
	// test's request burst passes, and push stays disabled.
	gormStore := store.NewGormStore(testDB)
	serverCfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	}
	router := api.NewRouter(serverCfg, gormStore, nil, nil)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(t *testing.T, w *httptest.ResponseRecorder, out any) {
		t.Helper()
		require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	}

	// 3. Create the room and the guest through the API.
	var room model.Room
	w := do(http.MethodPost, "/api/rooms", body{
		"number":   "101",
		"type":     "single",
		"rate":     80,
		"features": []string{"Wi-Fi"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &room)

	var guest model.Guest
	w = do(http.MethodPost, "/api/guests", body{
		"firstName": "John",
		"lastName":  "Smith",
		"email":     "john.smith@email.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &guest)

	// --- Step 1: Availability before booking ---
	t.Run("room is available before booking", func(t *testing.T) {
		w := do(http.MethodGet, "/api/availability?check_in=2024-01-10&check_out=2024-01-12", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var free []model.Room
		decode(t, w, &free)
		require.Len(t, free, 1)
		assert.Equal(t, room.ID, free[0].ID)
	})

	// --- Step 2: Book the stay ---
	var reservation model.Reservation
	t.Run("create reservation derives charges", func(t *testing.T) {
		w := do(http.MethodPost, "/api/reservations", body{
			"guestId":     guest.ID,
			"roomId":      room.ID,
			"checkIn":     "2024-01-10T00:00:00Z",
			"checkOut":    "2024-01-12T00:00:00Z",
			"status":      "confirmed",
			"depositPaid": 50,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		decode(t, w, &reservation)
		assert.Equal(t, 160.0, reservation.TotalAmount, "two nights at 80")
		assert.Equal(t, model.ReservationConfirmed, reservation.Status)
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		w := do(http.MethodPost, "/api/reservations", body{
			"guestId":  guest.ID,
			"roomId":   room.ID,
			"checkIn":  "2024-01-11T00:00:00Z",
			"checkOut": "2024-01-13T00:00:00Z",
		})
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("room disappears from availability", func(t *testing.T) {
		w := do(http.MethodGet, "/api/availability?check_in=2024-01-11&check_out=2024-01-13", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var free []model.Room
		decode(t, w, &free)
		assert.Empty(t, free)

		// The checkout day itself stays bookable.
		w = do(http.MethodGet, "/api/availability?check_in=2024-01-12&check_out=2024-01-14", nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &free)
		assert.Len(t, free, 1)
	})

	// --- Step 3: Check in ---
	t.Run("check in", func(t *testing.T) {
		w := do(http.MethodPost, "/api/reservations/"+reservation.ID+"/transition", body{
			"target": "checkedIn",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result store.TransitionResult
		decode(t, w, &result)
		assert.Equal(t, model.ReservationCheckedIn, result.Reservation.Status)
		assert.Nil(t, result.Billing)
	})

	// --- Step 4: Billing preview while the checkout form is open ---
	t.Run("billing preview", func(t *testing.T) {
		path := fmt.Sprintf("/api/reservations/%s/billing?additional_charges=20&discount=10", reservation.ID)
		w := do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var billing struct {
			Subtotal           float64 `json:"subtotal"`
			OutstandingBalance float64 `json:"outstandingBalance"`
		}
		decode(t, w, &billing)
		assert.Equal(t, 170.0, billing.Subtotal)
		assert.Equal(t, 120.0, billing.OutstandingBalance)
	})

	// --- Step 5: Check out with a dirty-room inspection ---
	t.Run("check out finalizes billing and flags the room", func(t *testing.T) {
		w := do(http.MethodPost, "/api/reservations/"+reservation.ID+"/transition", body{
			"target":            "checkedOut",
			"inspection":        "dirty",
			"additionalCharges": 20,
			"discount":          10,
			"notes":             "minibar restock needed",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result store.TransitionResult
		decode(t, w, &result)
		assert.Equal(t, model.ReservationCheckedOut, result.Reservation.Status)
		assert.Contains(t, result.Reservation.Notes, "Checkout Notes: minibar restock needed")
		require.NotNil(t, result.Billing)
		assert.Equal(t, 170.0, result.Billing.Subtotal)
		assert.Equal(t, 120.0, result.Billing.OutstandingBalance)

		var rooms []model.Room
		w = do(http.MethodGet, "/api/rooms", nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &rooms)
		require.Len(t, rooms, 1)
		assert.Equal(t, model.RoomDirty, rooms[0].Status)
	})

	t.Run("further transitions are rejected", func(t *testing.T) {
		w := do(http.MethodPost, "/api/reservations/"+reservation.ID+"/transition", body{
			"target": "checkedIn",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	// --- Step 6: Guest deletion stays blocked by the completed stay ---
	t.Run("guest deletion guard", func(t *testing.T) {
		w := do(http.MethodDelete, "/api/guests/"+guest.ID, nil)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = do(http.MethodGet, "/api/guests", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var guests []model.Guest
		decode(t, w, &guests)
		require.Len(t, guests, 1)
		require.Len(t, guests[0].BookingHistory, 1)
		assert.Equal(t, reservation.ID, guests[0].BookingHistory[0].ReservationID)
	})

	// --- Step 7: Housekeeping turns the room around ---
	t.Run("housekeeping resets room status", func(t *testing.T) {
		w := do(http.MethodPatch, "/api/rooms/"+room.ID, body{"status": "available"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated model.Room
		decode(t, w, &updated)
		assert.Equal(t, model.RoomAvailable, updated.Status)
	})
}

