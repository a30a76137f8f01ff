package main

import (
	"context"
	"net/http"
	"time"

	"github.com/careerai/interview-service/config"
	"github.com/careerai/interview-service/database"
	_ "github.com/careerai/interview-service/docs" // Swagger docs - auto-generated
	"github.com/careerai/interview-service/internal/controller"
	"github.com/careerai/interview-service/internal/logger"
	"github.com/careerai/interview-service/internal/model"
	"github.com/careerai/interview-service/internal/repository"
	"github.com/careerai/interview-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interview Session API
// @version 1.0
// @description Mock interview practice API: role-based question generation, per-answer evaluation with graceful fallback, and final readiness summaries.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSessionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewSkillExtractorService,
			service.NewQuestionSelectorService,
			service.NewSummaryService,
			NewEvaluator,
			service.NewInterviewService,
			service.NewResumeMatchService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewInterviewController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewEvaluator assembles the evaluation chain: the configured remote
// provider wrapped so every remote failure degrades to the local
// heuristic evaluator instead of failing the request.
func NewEvaluator(cfg *config.Config, summaries service.SummaryService) (service.Evaluator, error) {
	var remote service.Evaluator
	switch cfg.Evaluator.Provider {
	case "gemini":
		gemini, err := service.NewGeminiEvaluator(cfg, summaries)
		if err != nil {
			return nil, err
		}
		remote = gemini
	default:
		remote = service.NewRemoteEvaluator(cfg)
	}
	return service.NewFailoverEvaluator(remote, service.NewFallbackEvaluator(summaries)), nil
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *controller.InterviewController,
) {
	router.GET("/healthz", interviewCtrl.Health)

	apiGroup := router.Group("/api/v1")
	{
		interviewsGroup := apiGroup.Group("/interviews")
		interviewsGroup.POST("", interviewCtrl.StartSession)
		interviewsGroup.GET("", interviewCtrl.ListSessions)
		interviewsGroup.GET("/:session_id", interviewCtrl.GetSession)
		interviewsGroup.POST("/:session_id/answers", interviewCtrl.SubmitAnswer)
		interviewsGroup.POST("/:session_id/complete", interviewCtrl.CompleteSession)

		apiGroup.POST("/resume/match", interviewCtrl.MatchResume)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview Session API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Session{},
		&model.Question{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
