package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/handlers/authhandler"
)

// AuthRoute handles authentication routes
type AuthRoute struct {
	authHandler *authhandler.AuthHandler
}

// NewAuthRoute creates a new auth route
func NewAuthRoute(authHandler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{authHandler: authHandler}
}

// RegisterRouter registers auth routes
func (a *AuthRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/auth/register", a.authHandler.Register)
	router.POST("/auth/login", a.authHandler.Login)
}
