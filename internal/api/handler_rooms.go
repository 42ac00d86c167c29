package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/model"
	"hotel-pms-backend/internal/store"
)

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type createRoomRequest struct {
	Number   string           `json:"number" binding:"required"`
	Type     model.RoomType   `json:"type" binding:"required"`
	Status   model.RoomStatus `json:"status"`
	Rate     float64          `json:"rate" binding:"required"`
	Features []string         `json:"features"`
}

// CreateRoom handles POST /api/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.store.CreateRoom(c.Request.Context(), model.Room{
		Number:   req.Number,
		Type:     req.Type,
		Status:   req.Status,
		Rate:     req.Rate,
		Features: req.Features,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PATCH /api/rooms/:id. Housekeeping uses it to change a
// room's status; marking a room available again notifies subscribed staff.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var upd store.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.store.UpdateRoom(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if upd.Status != nil && *upd.Status == model.RoomAvailable {
		h.notifyRoomReady(room.ID)
	}
	c.JSON(http.StatusOK, room)
}

// ListRatePlans handles GET /api/rate_plans.
func (h *Handler) ListRatePlans(c *gin.Context) {
	plans, err := h.store.ListRatePlans(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}
