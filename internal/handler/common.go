package handler

import (
	"net/http"

	"rsvp-service/internal/model"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token issued at login.
const SessionCookie = "sessionId"

// ContextUserKey is where the auth middleware stores the authenticated user.
const ContextUserKey = "currentUser"

// ErrorCode is the machine-readable half of the error envelope.
type ErrorCode string

const (
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// Envelope is the response contract for every endpoint: either a success
// payload or a message plus code, never both.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    ErrorCode   `json:"code,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func Fail(c *gin.Context, status int, msg string, code ErrorCode) {
	c.JSON(status, Envelope{Success: false, Error: msg, Code: code})
}

// internalMessage keeps the caught error's own message for the client but
// never anything more.
func internalMessage(err error) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Internal server error"
}

// CurrentUser returns the authenticated user placed in the context by the
// auth middleware, or nil when the route was not authenticated.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request format", CodeInvalidInput)
		return err
	}
	return nil
}
