package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/skillgate/config"
	"github.com/lshigami/skillgate/database"
	_ "github.com/lshigami/skillgate/docs"
	"github.com/lshigami/skillgate/internal/cache"
	candidatectrl "github.com/lshigami/skillgate/internal/controller/candidate"
	recruiterctrl "github.com/lshigami/skillgate/internal/controller/recruiter"
	"github.com/lshigami/skillgate/internal/logger"
	"github.com/lshigami/skillgate/internal/middleware"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/lshigami/skillgate/internal/repository"
	"github.com/lshigami/skillgate/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("pretty") {
			logger.Init(cfg.Log.Level, cfg.Log.Pretty)
		}
		return runServer(cfg)
	},
}

// @title Skillgate Assessment API
// @version 1.0
// @description Resume-gated technical assessments with AI-generated questions and grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func runServer(cfg *config.Config) error {
	app := fx.New(
		fx.Supply(cfg),

		fx.Provide(
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStore,
			cache.NewPoolCache,
		),

		fx.Provide(
			service.NewTextGenerator,
			func(gen service.TextGenerator, pools *cache.PoolCache, cfg *config.Config) service.QuestionSetService {
				return service.NewQuestionSetService(gen, pools, cfg)
			},
			service.NewGradingService,
			service.NewRecruiterAssessmentService,
			service.NewCandidateAssessmentService,
			service.NewAnswerSubmissionService,
		),

		fx.Provide(
			recruiterctrl.NewRecruiterAssessmentController,
			candidatectrl.NewCandidateAssessmentController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(registerResourceCleanup),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(stopCtx)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterRoutesAndStartServer mounts the API under /api/v1 and ties the
// HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	recruiterCtrl *recruiterctrl.RecruiterAssessmentController,
	candidateCtrl *candidatectrl.CandidateAssessmentController,
) {
	api := router.Group("/api/v1")
	recruiterCtrl.RegisterRoutes(api)
	candidateCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Skillgate API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func registerResourceCleanup(lc fx.Lifecycle, db *gorm.DB, pools *cache.PoolCache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := pools.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close redis client")
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Question{},
		&model.Answer{},
		&model.AssessmentResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
