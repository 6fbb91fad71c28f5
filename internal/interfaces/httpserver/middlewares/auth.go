package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/auth"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/responses"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

const userContextKey = "authenticated_user"

// Authentication verifies the bearer token and loads the active account it
// belongs to into the gin context.
func Authentication(users user.Repository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "Not authenticated")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "Not authenticated")
			return
		}

		claims, err := auth.ParseAccessToken(parts[1], jwtSecret)
		if err != nil {
			responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "Invalid or expired token")
			return
		}

		usr, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			responses.HandleError(c, err)
			return
		}
		if usr == nil || !usr.IsActive {
			responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "Inactive user")
			return
		}

		SetUser(c, usr)
		c.Next()
	}
}

// SetUser stores the authenticated account in the gin context.
func SetUser(c *gin.Context, usr *user.User) {
	c.Set(userContextKey, usr)
}

// UserFromContext returns the account loaded by Authentication.
func UserFromContext(c *gin.Context) (*user.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	usr, ok := val.(*user.User)
	return usr, ok
}
