package handler

import (
	"net/http"
	"strconv"

	"rsvp-service/internal/model"
	"rsvp-service/internal/service"
	apperrors "rsvp-service/pkg/app_errors"
	"rsvp-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GuestHandler struct {
	service service.GuestService
}

func NewGuestHandler(service service.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

func (h *GuestHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api", auth)
	{
		router.POST("events/:id/guests", h.Create)
		router.GET("guests/:id", h.GetByID)
		router.PUT("guests/:id", h.UpdateByID)
		router.DELETE("guests/:id", h.DeleteByID)
	}
}

type CreateGuestRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PlusOnes     int     `json:"plus_ones"`
	DietaryNotes *string `json:"dietary_notes"`
}

type UpdateGuestRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	RSVPStatus   *string `json:"rsvp_status"`
	PlusOnes     *int    `json:"plus_ones"`
	DietaryNotes *string `json:"dietary_notes"`
}

func parseGuestID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		Fail(c, http.StatusBadRequest, "Invalid guest ID", CodeInvalidInput)
		return 0, false
	}
	return id, true
}

func (h *GuestHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "Create")
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}
	var req CreateGuestRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	guest := &model.Guest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	}
	created, err := h.service.Create(c, user.ID, eventID, guest)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	Success(c, http.StatusCreated, created)
}

func (h *GuestHandler) GetByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "GetByID")
		return
	}
	id, ok := parseGuestID(c)
	if !ok {
		return
	}
	guest, err := h.service.GetByID(c, id, user.ID)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	Success(c, http.StatusOK, guest)
}

func (h *GuestHandler) UpdateByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "UpdateByID")
		return
	}
	id, ok := parseGuestID(c)
	if !ok {
		return
	}
	var req UpdateGuestRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Email == nil && req.Phone == nil && req.RSVPStatus == nil && req.PlusOnes == nil && req.DietaryNotes == nil {
		Fail(c, http.StatusBadRequest, "At least one field is required", CodeInvalidInput)
		return
	}
	params := model.UpdateGuestParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	}
	if req.RSVPStatus != nil {
		status := model.RSVPStatus(*req.RSVPStatus)
		params.RSVPStatus = &status
	}
	updated, err := h.service.UpdateByID(c, id, user.ID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByID")
		return
	}
	Success(c, http.StatusOK, updated)
}

func (h *GuestHandler) DeleteByID(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "DeleteByID")
		return
	}
	id, ok := parseGuestID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteByID(c, id, user.ID); err != nil {
		h.handleError(c, err, "DeleteByID")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GuestHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrGuestNotFound:
		log.Warn("Guest not found")
		Fail(c, http.StatusNotFound, "Guest not found", CodeNotFound)
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
