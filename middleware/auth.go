package middleware

import (
	"context"
	"errors"
	"net/http"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

const userKey = "user"

// Authenticator resolves a session token to a stored user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware gates a route group on the session cookie and stores the
// resolved user in the gin context.
func AuthMiddleware(auth Authenticator, cookieName string, logger hclog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abort(c, "Unauthorized - No Token Provided")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, data_access.ErrUserNotFound):
			abort(c, "User not found")
			return
		case err != nil:
			logger.Debug("session rejected", "error", err, "request_id", RequestIDFrom(c))
			abort(c, "Unauthorized - Invalid Token")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Envelope{Success: false, Message: message})
}
