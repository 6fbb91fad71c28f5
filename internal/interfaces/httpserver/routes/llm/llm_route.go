package llm

import (
	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/handlers/llmhandler"
)

// LLMRoute handles the chat routes
type LLMRoute struct {
	llmHandler *llmhandler.LLMHandler
	auth       gin.HandlerFunc
}

// NewLLMRoute creates a new chat route
func NewLLMRoute(llmHandler *llmhandler.LLMHandler, auth gin.HandlerFunc) *LLMRoute {
	return &LLMRoute{llmHandler: llmHandler, auth: auth}
}

// RegisterRouter registers chat routes. The message listing is deliberately
// public; only asking a question requires a token.
func (r *LLMRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/llm/msg", r.auth, r.llmHandler.PostMessage)
	router.GET("/llm/ten_msgs", r.llmHandler.GetTenMessages)
}
