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

// WizardHandler serves the event setup wizard steps. Transport is the only
// step implemented so far.
type WizardHandler struct {
	transport service.TransportService
}

func NewWizardHandler(transport service.TransportService) *WizardHandler {
	return &WizardHandler{transport: transport}
}

func (h *WizardHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/wizard", auth)
	{
		router.POST("transport", h.SaveTransport)
		router.GET("transport/:id", h.GetTransport)
	}
}

type SaveTransportRequest struct {
	EventID          int     `json:"event_id" binding:"required"`
	Mode             string  `json:"mode" binding:"required"`
	ProviderName     *string `json:"provider_name"`
	ProviderPhone    *string `json:"provider_phone"`
	ProviderEmail    *string `json:"provider_email"`
	Instructions     *string `json:"instructions"`
	PickupProvided   bool    `json:"pickup_provided"`
	DropoffProvided  bool    `json:"dropoff_provided"`
	ShuttleProvided  bool    `json:"shuttle_provided"`
	FlightAssistance bool    `json:"flight_assistance"`
	FlightMode       string  `json:"flight_mode" binding:"required"`
}

func (h *WizardHandler) SaveTransport(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "SaveTransport")
		return
	}
	var req SaveTransportRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	pref := &model.TransportPreference{
		EventID:          req.EventID,
		Mode:             model.TransportMode(req.Mode),
		ProviderName:     req.ProviderName,
		ProviderPhone:    req.ProviderPhone,
		ProviderEmail:    req.ProviderEmail,
		Instructions:     req.Instructions,
		PickupProvided:   req.PickupProvided,
		DropoffProvided:  req.DropoffProvided,
		ShuttleProvided:  req.ShuttleProvided,
		FlightAssistance: req.FlightAssistance,
		FlightMode:       model.FlightMode(req.FlightMode),
	}
	saved, err := h.transport.Save(c, user.ID, pref)
	if err != nil {
		h.handleError(c, err, "SaveTransport")
		return
	}
	Success(c, http.StatusOK, saved)
}

func (h *WizardHandler) GetTransport(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "GetTransport")
		return
	}
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 0 {
		Fail(c, http.StatusBadRequest, "Invalid event ID", CodeInvalidInput)
		return
	}
	pref, err := h.transport.GetByEventID(c, eventID, user.ID)
	if err != nil {
		h.handleError(c, err, "GetTransport")
		return
	}
	Success(c, http.StatusOK, pref)
}

func (h *WizardHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		Fail(c, http.StatusNotFound, "Event not found", CodeNotFound)
	case err == apperrors.ErrTransportNotFound:
		log.Warn("Transport preferences not found")
		Fail(c, http.StatusNotFound, "Transport preferences not found", CodeNotFound)
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		Fail(c, http.StatusBadRequest, "Invalid input", CodeInvalidInput)
	default:
		log.Error("Unexpected error")
		Fail(c, http.StatusInternalServerError, internalMessage(err), CodeInternalError)
	}
}
