package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/model"
	"hotel-pms-backend/internal/store"
)

// ListGuests handles GET /api/guests.
func (h *Handler) ListGuests(c *gin.Context) {
	guests, err := h.store.ListGuests(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

type createGuestRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Nationality string `json:"nationality"`
	Preferences string `json:"preferences"`
}

// CreateGuest handles POST /api/guests. Guests are also created inline from
// the reservation form, which calls this endpoint first.
func (h *Handler) CreateGuest(c *gin.Context) {
	var req createGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.store.CreateGuest(c.Request.Context(), model.Guest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Nationality: req.Nationality,
		Preferences: req.Preferences,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest handles PATCH /api/guests/:id.
func (h *Handler) UpdateGuest(c *gin.Context) {
	var upd store.GuestUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.store.UpdateGuest(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /api/guests/:id. Deletion is refused with 409
// while the guest holds any non-cancelled reservation.
func (h *Handler) DeleteGuest(c *gin.Context) {
	if err := h.store.DeleteGuest(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
