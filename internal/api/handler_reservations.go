package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/engine"
	"hotel-pms-backend/internal/model"
	"hotel-pms-backend/internal/store"
)

// ListReservations handles GET /api/reservations.
func (h *Handler) ListReservations(c *gin.Context) {
	reservations, err := h.store.ListReservations(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req store.NewReservation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.store.CreateReservation(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles PATCH /api/reservations/:id for amount and notes
// edits. Status changes go through the transition endpoint.
func (h *Handler) UpdateReservation(c *gin.Context) {
	var upd store.ReservationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.store.UpdateReservation(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

type transitionRequest struct {
	Target            model.ReservationStatus  `json:"target" binding:"required"`
	Inspection        engine.InspectionOutcome `json:"inspection"`
	AdditionalCharges float64                  `json:"additionalCharges"`
	Discount          float64                  `json:"discount"`
	Notes             string                   `json:"notes"`
}

// ApplyTransition handles POST /api/reservations/:id/transition. Check-in and
// cancellation carry no side effects; check-out sets the room's post-stay
// status from the inspection outcome and finalizes billing.
func (h *Handler) ApplyTransition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.store.ApplyTransition(c.Request.Context(), c.Param("id"), req.Target, store.TransitionEffects{
		Inspection:        req.Inspection,
		AdditionalCharges: req.AdditionalCharges,
		Discount:          req.Discount,
		Notes:             req.Notes,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.notifyRoomReady(result.RoomReadyID)
	c.JSON(http.StatusOK, result)
}

// GetBilling handles GET /api/reservations/:id/billing. It is a pure query:
// the checkout form polls it while staff adjust charges and discounts.
func (h *Handler) GetBilling(c *gin.Context) {
	additional, err := parseAmount(c.Query("additional_charges"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid additional_charges"})
		return
	}
	discount, err := parseAmount(c.Query("discount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		return
	}

	reservation, err := h.store.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, engine.ComputeBilling(reservation, additional, discount))
}

func parseAmount(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
