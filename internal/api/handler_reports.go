package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/engine"
	"hotel-pms-backend/internal/model"
)

type dashboardResponse struct {
	Date            string           `json:"date"`
	TotalRooms      int              `json:"totalRooms"`
	TotalGuests     int              `json:"totalGuests"`
	Occupancy       engine.Occupancy `json:"occupancy"`
	OccupancyRate   int              `json:"occupancyRate"`
	TotalRevenue    float64          `json:"totalRevenue"`
	TodayArrivals   int              `json:"todayArrivals"`
	TodayDepartures int              `json:"todayDepartures"`
	InHouse         int              `json:"inHouse"`
}

// GetDashboard handles GET /api/reports/dashboard: today's occupancy,
// arrivals, departures and running revenue for the front-desk landing page.
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	rooms, err := h.store.ListRooms(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	guests, err := h.store.ListGuests(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	reservations, err := h.store.ListReservations(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	today := time.Now().UTC()
	occupancy := engine.RoomOccupancy(rooms, reservations, today)

	rate := 0
	if occupancy.Total > 0 {
		rate = int(math.Round(float64(occupancy.Occupied) / float64(occupancy.Total) * 100))
	}

	inHouse := 0
	for _, r := range reservations {
		if r.Status == model.ReservationCheckedIn {
			inHouse++
		}
	}

	c.JSON(http.StatusOK, dashboardResponse{
		Date:            engine.DayStart(today).Format("2006-01-02"),
		TotalRooms:      len(rooms),
		TotalGuests:     len(guests),
		Occupancy:       occupancy,
		OccupancyRate:   rate,
		TotalRevenue:    engine.TotalRevenue(reservations),
		TodayArrivals:   len(engine.ArrivalsOn(reservations, today)),
		TodayDepartures: len(engine.DeparturesOn(reservations, today)),
		InHouse:         inHouse,
	})
}

type revenueRow struct {
	RoomType model.RoomType `json:"roomType"`
	Revenue  float64        `json:"revenue"`
}

// GetRevenueReport handles GET /api/reports/revenue: non-cancelled revenue
// grouped by room type.
func (h *Handler) GetRevenueReport(c *gin.Context) {
	ctx := c.Request.Context()
	rooms, err := h.store.ListRooms(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	reservations, err := h.store.ListReservations(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	byType := engine.RevenueByRoomType(rooms, reservations)
	rows := make([]revenueRow, 0, len(byType))
	for _, t := range []model.RoomType{model.RoomTypeSingle, model.RoomTypeDouble, model.RoomTypeSuite, model.RoomTypeDormitory} {
		rows = append(rows, revenueRow{RoomType: t, Revenue: byType[t]})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      engine.TotalRevenue(reservations),
		"byRoomType": rows,
	})
}
