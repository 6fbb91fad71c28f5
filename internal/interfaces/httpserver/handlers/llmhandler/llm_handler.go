package llmhandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/llm"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/metrics"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/middlewares"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/requests/llmreq"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/responses"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/responses/llmres"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

const historyLimit = 10

// LLMHandler serves the chat endpoints.
type LLMHandler struct {
	gateway  llm.Service
	messages message.Repository
}

func NewLLMHandler(gateway llm.Service, messages message.Repository) *LLMHandler {
	return &LLMHandler{gateway: gateway, messages: messages}
}

// PostMessage answers a question for the authenticated user. With
// mock_mode=true the completion API is skipped and a canned answer is
// returned after a simulated delay.
//
// @Summary Ask the assistant a question
// @Accept json
// @Produce json
// @Param mock_mode query bool false "Skip the completion API"
// @Param request body llmreq.Message true "Question"
// @Success 200 {object} llmres.Answer
// @Security BearerAuth
// @Router /llm/msg [post]
func (h *LLMHandler) PostMessage(c *gin.Context) {
	usr, ok := middlewares.UserFromContext(c)
	if !ok {
		responses.HandleNewError(c, apperrors.ErrorTypeUnauthorized, "Not authenticated")
		return
	}

	var req llmreq.Message
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, apperrors.ErrorTypeValidation, err.Error())
		return
	}

	mockMode := false
	if raw := c.Query("mock_mode"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			responses.HandleNewError(c, apperrors.ErrorTypeValidation, "mock_mode must be a boolean")
			return
		}
		mockMode = parsed
	}

	mode := "live"
	if mockMode {
		mode = "mock"
	}

	answer, err := h.gateway.Ask(c.Request.Context(), usr, req.Question, mockMode)
	metrics.RecordLLMRequest(mode, err)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, llmres.Answer{Message: answer})
}

// GetTenMessages returns the ten most recent messages, newest first.
//
// @Summary List the latest messages
// @Produce json
// @Success 200 {array} llmres.Message
// @Router /llm/ten_msgs [get]
func (h *LLMHandler) GetTenMessages(c *gin.Context) {
	msgs, err := h.messages.LatestOrFail(c.Request.Context(), historyLimit)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, llmres.NewMessageList(msgs))
}
