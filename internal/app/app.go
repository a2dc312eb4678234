// Package app assembles the HTTP service with fx.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/englishhub/config"
	"github.com/lshigami/englishhub/database"
	_ "github.com/lshigami/englishhub/docs" // swagger spec
	"github.com/lshigami/englishhub/internal/assessment"
	"github.com/lshigami/englishhub/internal/cache"
	adminctrl "github.com/lshigami/englishhub/internal/controller/admin"
	userctrl "github.com/lshigami/englishhub/internal/controller/user"
	"github.com/lshigami/englishhub/internal/repository"
	"github.com/lshigami/englishhub/internal/service"
	"github.com/lshigami/englishhub/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// Module wires everything except *config.Config, which the caller supplies.
// Migrations and route registration run on construction; the listener only
// starts when ServeHTTP is invoked as well.
func Module() fx.Option {
	return fx.Options(
		// Core
		fx.Provide(
			database.NewDatabase,
			NewRedisClient,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewLessonRepository,
			repository.NewExerciseRepository,
			repository.NewExerciseRecordRepository,
			repository.NewTestRepository,
			repository.NewTestRecordRepository,
		),

		// Engine state
		fx.Provide(
			NewTestCache,
			NewExerciseSessionStore,
			NewTestSessionStore,
		),

		// Services
		fx.Provide(
			service.NewLessonService,
			service.NewTestService,
			service.NewAdminContentService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewLessonController,
			userctrl.NewUserTestController,
			adminctrl.NewAdminContentController,
		),

		fx.Invoke(database.Migrate),
		fx.Invoke(RegisterRoutes),
	)
}

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("Redis not configured, keeping sessions and content cache in memory")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewTestCache(cfg *config.Config, client *redis.Client, testRepo repository.TestRepository) cache.TestCache {
	loader := cache.LoaderFunc(testRepo.FindByID)
	if client != nil {
		return cache.NewRedisTestCache(client, loader, cfg.Engine.ContentCacheTTL)
	}
	return cache.NewMemoryTestCache(loader, cfg.Engine.ContentCacheTTL)
}

func NewExerciseSessionStore(cfg *config.Config, client *redis.Client) service.ExerciseSessionStore {
	return newStore[*assessment.ExerciseSession](cfg, client, "session:exercise")
}

func NewTestSessionStore(cfg *config.Config, client *redis.Client) service.TestSessionStore {
	return newStore[*assessment.TestSession](cfg, client, "session:test")
}

func newStore[T any](cfg *config.Config, client *redis.Client, prefix string) session.Store[T] {
	if client != nil {
		return session.NewRedisStore[T](client, prefix, cfg.Engine.SessionTTL)
	}
	return session.NewMemoryStore[T](cfg.Engine.SessionTTL)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	return r
}

func RegisterRoutes(
	router *gin.Engine,
	lessonCtrl *userctrl.LessonController,
	testCtrl *userctrl.UserTestController,
	adminCtrl *adminctrl.AdminContentController,
) {
	adminCtrl.RegisterRoutes(router.Group("/api/v1/admin"))

	api := router.Group("/api/v1")
	lessonCtrl.RegisterRoutes(api)
	testCtrl.RegisterRoutes(api)
}

// ServeHTTP ties the listener to the fx lifecycle.
func ServeHTTP(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EnglishHub API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
