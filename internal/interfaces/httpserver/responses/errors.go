package responses

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

// HandleError attaches err to the gin context and aborts the handler chain.
// The logging middleware picks the error up, logs it and writes the JSON
// error body.
func HandleError(c *gin.Context, err error) {
	appErr := apperrors.Get(err)
	if appErr == nil {
		appErr = apperrors.Wrap(apperrors.ErrorTypeInternal, "Internal Server Error", err)
	}
	_ = c.Error(appErr)
	c.Abort()
}

// HandleNewError builds an AppError at the call site and attaches it.
func HandleNewError(c *gin.Context, errorType apperrors.ErrorType, detail any) {
	_ = c.Error(apperrors.New(errorType, detail))
	c.Abort()
}
