package handler

import (
	"net/http"
	"strconv"
	"time"

	"rsvp-service/internal/model"
	"rsvp-service/internal/service"
	apperrors "rsvp-service/pkg/app_errors"
	"rsvp-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api", auth)
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.GET("events/:id/guests", h.ListGuests)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.UpdateByID)
		router.DELETE("events/:id", h.DeleteByID)
	}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// parseEventID rejects anything that is not a non-negative integer before any
// lookup happens.
func parseEventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		Fail(c, http.StatusBadRequest, "Invalid event ID", CodeInvalidInput)
		return 0, false
	}
	return id, true
}

func (h *EventHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "List")
		return
	}
	events, err := h.service.List(c, user.ID)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	Success(c, http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "GetByID")
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id, user.ID)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	Success(c, http.StatusOK, event)
}

// ListGuests returns the guest collection of one event exactly as the service
// layer produced it.
func (h *EventHandler) ListGuests(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "ListGuests")
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	guests, err := h.service.ListGuests(c, id, user.ID)
	if err != nil {
		h.handleError(c, err, "ListGuests")
		return
	}
	Success(c, http.StatusOK, guests)
}

func (h *EventHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "Create")
		return
	}
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	Success(c, http.StatusCreated, created)
}

func (h *EventHandler) UpdateByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "UpdateByID")
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Title == nil && req.Description == nil && req.Location == nil && req.StartsAt == nil && req.EndsAt == nil {
		Fail(c, http.StatusBadRequest, "At least one field is required", CodeInvalidInput)
		return
	}
	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	updated, err := h.service.UpdateByID(c, id, user.ID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByID")
		return
	}
	Success(c, http.StatusOK, updated)
}

func (h *EventHandler) DeleteByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "DeleteByID")
		return
	}
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(c, id, user.ID); err != nil {
		h.handleError(c, err, "DeleteByID")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		Fail(c, http.StatusNotFound, "Event not found", CodeNotFound)
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		Fail(c, http.StatusBadRequest, "Invalid input", CodeInvalidInput)
	default:
		log.Error("Unexpected error")
		Fail(c, http.StatusInternalServerError, internalMessage(err), CodeInternalError)
	}
}
