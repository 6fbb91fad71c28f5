package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/config"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/logger"
	middleware "github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/middlewares"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/routes/auth"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/routes/llm"
)

type HTTPServer struct {
	engine    *gin.Engine
	authRoute *auth.AuthRoute
	llmRoute  *llm.LLMRoute
	config    *config.Config
}

func NewHTTPServer(
	cfg *config.Config,
	traces *logger.TraceFactory,
	authRoute *auth.AuthRoute,
	llmRoute *llm.LLMRoute,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		authRoute,
		llmRoute,
		cfg,
	}
	// Metrics wraps RequestLogging so it observes the status the error
	// rendering ultimately writes.
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.Metrics())
	server.engine.Use(middleware.RequestLogging(traces))
	server.engine.Use(middleware.CORS())

	server.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, true)
	})

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &server
}

func (s *HTTPServer) Run() error {
	root := s.engine.Group("/")
	s.authRoute.RegisterRouter(root)
	s.llmRoute.RegisterRouter(root)

	return s.engine.Run(fmt.Sprintf(":%d", s.config.HTTPPort))
}
