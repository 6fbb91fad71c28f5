package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Dmitry2004126/ai-assistant/internal/config"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/llm"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/repository/messagerepo"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/repository/userrepo"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/transaction"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/logger"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/metrics"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/handlers/authhandler"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/handlers/llmhandler"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/middlewares"
	authroute "github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/routes/auth"
	llmroute "github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/routes/llm"
)

func main() {
	_ = godotenv.Load()

	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to build logger")
	}

	threshold, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	traces := logger.NewTraceFactory(threshold, cfg.LogFormat)

	db, err := database.Connect(database.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxIdle:     cfg.DBMaxIdle,
		MaxOpen:     cfg.DBMaxOpen,
		MaxLifetime: cfg.DBMaxLifetime,
		LogLevel:    gormlogger.Warn,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	txDB := transaction.NewDatabase(db)
	users := userrepo.NewUserGormRepository(txDB)
	messages := messagerepo.NewMessageGormRepository(txDB)

	gateway := llm.NewGateway(cfg, messages, txDB, log)

	authHandler := authhandler.NewAuthHandler(users, cfg.JWTSecret, cfg.AccessTokenLifetime)
	llmHandler := llmhandler.NewLLMHandler(gateway, messages)
	authMiddleware := middlewares.Authentication(users, cfg.JWTSecret)

	server := httpserver.NewHTTPServer(
		cfg,
		traces,
		authroute.NewAuthRoute(authHandler),
		llmroute.NewLLMRoute(llmHandler, authMiddleware),
	)

	log.Info().Int("http_port", cfg.HTTPPort).Int("metrics_port", cfg.MetricsPort).Msg("starting server")

	var group errgroup.Group
	group.Go(server.Run)
	group.Go(func() error {
		return metrics.ListenAndServe(cfg.MetricsPort)
	})
	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
