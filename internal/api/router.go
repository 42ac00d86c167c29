package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-pms-backend/config"
	"hotel-pms-backend/internal/mw"
	"hotel-pms-backend/internal/notification"
	"hotel-pms-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, webpushOptions *webpush.Options, notifier *notification.WorkerPool) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, webpushOptions, notifier)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/rooms", handler.ListRooms)
		api.POST("/rooms", handler.CreateRoom)
		api.PATCH("/rooms/:id", handler.UpdateRoom)
		api.GET("/rate_plans", caching, handler.ListRatePlans)

		api.GET("/guests", handler.ListGuests)
		api.POST("/guests", handler.CreateGuest)
		api.PATCH("/guests/:id", handler.UpdateGuest)
		api.DELETE("/guests/:id", handler.DeleteGuest)

		api.GET("/reservations", handler.ListReservations)
		api.POST("/reservations", handler.CreateReservation)
		api.PATCH("/reservations/:id", handler.UpdateReservation)
		api.POST("/reservations/:id/transition", handler.ApplyTransition)
		api.GET("/reservations/:id/billing", handler.GetBilling)

		api.GET("/availability", handler.GetAvailability)

		api.GET("/reports/dashboard", caching, handler.GetDashboard)
		api.GET("/reports/revenue", caching, handler.GetRevenueReport)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
