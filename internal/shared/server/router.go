package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jobtrail-backend/internal/auth"
	"jobtrail-backend/internal/autofill"
	"jobtrail-backend/internal/extract"
	"jobtrail-backend/internal/generate"
	"jobtrail-backend/internal/jobs"
	"jobtrail-backend/internal/llm"
	"jobtrail-backend/internal/llm/gemini"
	"jobtrail-backend/internal/llm/openai"
	"jobtrail-backend/internal/shared/config"
	"jobtrail-backend/internal/shared/metrics"
	"jobtrail-backend/internal/shared/server/middleware"
	"jobtrail-backend/internal/shared/server/respond"
	"jobtrail-backend/internal/shared/storage/db"
	"jobtrail-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var jobsRepo jobs.Repo
	var usersRepo users.Repo
	if sqlDB != nil {
		jobsRepo = &jobs.PGRepo{DB: sqlDB}
		usersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		jobsRepo = jobs.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	jobsHandler := jobs.NewHandler(jobs.NewService(jobsRepo))
	usersSvc := users.NewService(usersRepo)
	usersHandler := users.NewHandler(usersSvc)

	llmClient := newLLMClient(cfg)
	autofillHandler := autofill.NewHandler(autofill.NewService(llmClient))
	generateHandler := generate.NewHandler(generate.NewService(llmClient))
	extractHandler := extract.NewHandler()

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, usersSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	api.Use(middleware.RateLimit(aiRateLimits()))

	googleAuthSvc.RegisterRoutes(api)
	usersHandler.RegisterRoutes(api)
	jobsHandler.RegisterRoutes(api)
	autofillHandler.RegisterRoutes(api)
	generateHandler.RegisterRoutes(api)
	extractHandler.RegisterRoutes(api)

	return r
}

// newLLMClient picks the completion provider from config. A missing key
// yields a disabled client so AI endpoints fail with a clear error instead of
// panicking at startup.
func newLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("openai client unavailable: %v", err)
			return llm.Disabled{}
		}
		return client
	default:
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client unavailable: %v", err)
			return llm.Disabled{}
		}
		return client
	}
}

// aiRateLimits throttles completion-backed endpoints per user; everything
// else passes through.
func aiRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"AI": {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/ai/") {
				return "AI"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
