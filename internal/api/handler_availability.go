package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/model"
)

// GetAvailability handles GET /api/availability?check_in&check_out&room_type.
// Dates are calendar days (YYYY-MM-DD). The query is total: an inverted range
// simply yields no rooms.
func (h *Handler) GetAvailability(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be a date in YYYY-MM-DD form"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be a date in YYYY-MM-DD form"})
		return
	}

	roomType := model.RoomType(c.Query("room_type"))
	if roomType != "" && !model.ValidRoomType(roomType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room type"})
		return
	}

	rooms, err := h.store.AvailableRooms(c.Request.Context(), checkIn, checkOut, roomType)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}
