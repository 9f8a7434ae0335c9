package handler

import (
	"net/http"

	"rsvp-service/internal/service"
	apperrors "rsvp-service/pkg/app_errors"
	"rsvp-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/auth")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
	}
	authed := r.Group("/api/auth", auth)
	{
		authed.POST("logout", h.Logout)
		authed.GET("user", h.GetUser)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	user, err := h.service.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	Success(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	user, token, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}
	// session cookie, no explicit max-age; Redis TTL bounds the session
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	Success(c, http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err == nil && token != "" {
		if err := h.service.Logout(c, token); err != nil {
			h.handleError(c, err, "Logout")
			return
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		h.handleError(c, apperrors.ErrUnauthorized, "GetUser")
		return
	}
	Success(c, http.StatusOK, user)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrInvalidCredentials:
		log.Warn("Invalid credentials")
		Fail(c, http.StatusUnauthorized, "Invalid email or password", CodeUnauthorized)
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		Fail(c, http.StatusBadRequest, "Invalid input", CodeInvalidInput)
	default:
		log.Error("Unexpected error")
		Fail(c, http.StatusInternalServerError, internalMessage(err), CodeInternalError)
	}
}
