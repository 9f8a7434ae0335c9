package middleware

import (
	"net/http"

	"rsvp-service/internal/handler"
	"rsvp-service/internal/service"
	apperrors "rsvp-service/pkg/app_errors"
	"rsvp-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth resolves the session cookie to a user and stores it in the context.
// Failures surface as 500 INTERNAL_ERROR rather than 401: the historical
// contract treats a failed auth check like any other unexpected failure.
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handler.SessionCookie)
		if err != nil || token == "" {
			abortUnauthenticated(c, apperrors.ErrUnauthorized)
			return
		}
		user, err := auth.Authenticate(c, token)
		if err != nil {
			abortUnauthenticated(c, err)
			return
		}
		c.Set(handler.ContextUserKey, user)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, err error) {
	logger.WithComponent("middleware").Warn("authentication failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	handler.Fail(c, http.StatusInternalServerError, err.Error(), handler.CodeInternalError)
	c.Abort()
}
