package server

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhunt-backend/internal/applications"
	"jobhunt-backend/internal/coverletters"
	"jobhunt-backend/internal/llm"
	"jobhunt-backend/internal/llm/openai"
	"jobhunt-backend/internal/profile"
	"jobhunt-backend/internal/resumes"
	"jobhunt-backend/internal/shared/config"
	"jobhunt-backend/internal/shared/metrics"
	"jobhunt-backend/internal/shared/server/middleware"
	"jobhunt-backend/internal/shared/server/respond"
	"jobhunt-backend/internal/shared/storage/db"
	"jobhunt-backend/internal/shared/storage/object"
	localstore "jobhunt-backend/internal/shared/storage/object/local"
	s3store "jobhunt-backend/internal/shared/storage/object/s3"
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
	)

	// Dependencies
	resumeStore := newResumeStore(cfg)
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

	var profileRepo profile.Repo
	if sqlDB != nil {
		profileRepo = &profile.PGRepo{DB: sqlDB}
	} else {
		profileRepo = profile.NewMemoryRepo()
	}
	var applicationRepo applications.Repo
	if sqlDB != nil {
		applicationRepo = &applications.PGRepo{DB: sqlDB}
	} else {
		applicationRepo = applications.NewMemoryRepo()
	}

	// A missing API key surfaces per-request as 412 rather than failing boot;
	// the key can be added to .env without redeploying.
	var client llm.Client
	if openaiClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel); err != nil {
		if !errors.Is(err, llm.ErrMissingAPIKey) {
			log.Printf("letter generation disabled: %v", err)
		}
	} else {
		client = openaiClient
	}

	letterSvc := coverletters.NewService(
		coverletters.NewSessionStore(cfg.CoverLetterDir),
		resumeStore,
		profileRepo,
		client,
	)
	limiter := middleware.NewRateLimiter(nil)
	generateLimit := middleware.RateLimit(limiter, middleware.RateLimitRule{Rate: 0.2, Burst: 3})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	profile.NewHandler(profileRepo).RegisterRoutes(api)
	resumes.NewHandler(resumes.NewService(resumeStore)).RegisterRoutes(api)
	coverletters.NewHandler(letterSvc).RegisterRoutes(api, generateLimit)
	applications.NewHandler(applicationRepo).RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

func newResumeStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.ResumeDir)
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
