package authhandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/auth"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/metrics"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/requests/authreq"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/responses"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/responses/authres"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

const (
	detailUserAlreadyExists = "REGISTER_USER_ALREADY_EXISTS"
	detailBadCredentials    = "LOGIN_BAD_CREDENTIALS"
)

// AuthHandler serves account registration and token issuance.
type AuthHandler struct {
	users         user.Repository
	jwtSecret     string
	tokenLifetime time.Duration
}

func NewAuthHandler(users user.Repository, jwtSecret string, tokenLifetime time.Duration) *AuthHandler {
	return &AuthHandler{
		users:         users,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
	}
}

// Register creates a new active account.
//
// @Summary Register a new user
// @Accept json
// @Produce json
// @Param request body authreq.Credentials true "Account credentials"
// @Success 201 {object} authres.User
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req authreq.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordAuthRequest("register", err)
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, err.Error())
		return
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		metrics.RecordAuthRequest("register", err)
		responses.HandleError(c, err)
		return
	}
	if existing != nil {
		metrics.RecordAuthRequest("register", apperrors.New(apperrors.ErrorTypeValidation, detailUserAlreadyExists))
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, detailUserAlreadyExists)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		metrics.RecordAuthRequest("register", err)
		responses.HandleError(c, err)
		return
	}

	usr := &user.User{
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := h.users.Create(c.Request.Context(), usr); err != nil {
		metrics.RecordAuthRequest("register", err)
		responses.HandleError(c, err)
		return
	}

	metrics.RecordAuthRequest("register", nil)
	c.JSON(http.StatusCreated, authres.NewUser(usr))
}

// Login exchanges valid credentials for a bearer access token.
//
// @Summary Log in
// @Accept json
// @Produce json
// @Param request body authreq.Credentials true "Account credentials"
// @Success 200 {object} authres.Token
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req authreq.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordAuthRequest("login", err)
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, err.Error())
		return
	}

	usr, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		metrics.RecordAuthRequest("login", err)
		responses.HandleError(c, err)
		return
	}
	// One detail for every rejection reason, so callers cannot probe which
	// emails are registered.
	if usr == nil || !usr.IsActive || !auth.CheckPasswordHash(req.Password, usr.HashedPassword) {
		metrics.RecordAuthRequest("login", apperrors.New(apperrors.ErrorTypeValidation, detailBadCredentials))
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, detailBadCredentials)
		return
	}

	token, err := auth.NewAccessToken(usr.ID, h.jwtSecret, h.tokenLifetime)
	if err != nil {
		metrics.RecordAuthRequest("login", err)
		responses.HandleError(c, err)
		return
	}

	metrics.RecordAuthRequest("login", nil)
	c.JSON(http.StatusOK, authres.Token{AccessToken: token, TokenType: "bearer"})
}
