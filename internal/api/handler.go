package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/engine"
	"hotel-pms-backend/internal/notification"
	"hotel-pms-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	webpush  *webpush.Options
	notifier *notification.WorkerPool
}

// NewHandler creates a new API handler. The notifier may be nil when push is
// not configured.
func NewHandler(s store.Store, webpushOptions *webpush.Options, notifier *notification.WorkerPool) *Handler {
	return &Handler{
		store:    s,
		webpush:  webpushOptions,
		notifier: notifier,
	}
}

// notifyRoomReady queues a room-ready push, if push is configured.
func (h *Handler) notifyRoomReady(roomID string) {
	if h.notifier != nil && roomID != "" {
		h.notifier.Dispatch(roomID)
	}
}

// abortWithError translates engine failures into HTTP statuses. All of them
// are local validation failures: the store committed nothing.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrUnresolvedReference):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrGuestHasActiveReservations),
		errors.Is(err, store.ErrRoomConflict):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrInvalidTransition),
		errors.Is(err, engine.ErrInvalidDateRange):
		status = http.StatusUnprocessableEntity
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
