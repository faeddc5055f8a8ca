package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/abdullah3034/portfolio-api/handlers"
	"github.com/abdullah3034/portfolio-api/internal/config"
	"github.com/abdullah3034/portfolio-api/internal/contact"
	"github.com/abdullah3034/portfolio-api/internal/database"
	"github.com/abdullah3034/portfolio-api/internal/education"
	"github.com/abdullah3034/portfolio-api/internal/mailer"
	"github.com/abdullah3034/portfolio-api/internal/projects"
	"github.com/abdullah3034/portfolio-api/internal/skills"
	"github.com/abdullah3034/portfolio-api/internal/storage"
	"github.com/abdullah3034/portfolio-api/internal/tokens"
	"github.com/abdullah3034/portfolio-api/internal/users"
	"github.com/abdullah3034/portfolio-api/pkg/logger"
	"github.com/abdullah3034/portfolio-api/pkg/metrics"
	"github.com/abdullah3034/portfolio-api/pkg/middleware"
)

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v smtp=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.SMTP.Host != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// MongoDB is required. The connector serializes the initial dial; retry a
	// few times so a slow database container does not kill the process.
	connector := database.NewConnector(cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
	db, err := connector.DB(context.Background())
	for attempt := 1; err != nil && attempt < 5; attempt++ {
		logger.Warnf("mongo connect attempt %d failed: %v", attempt, err)
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
		db, err = connector.DB(context.Background())
	}
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer connector.Close(context.Background())
	logger.Infof("connected to MongoDB: %s", cfg.MongoDB.Database)

	userRepo := users.NewMongoUserRepository(db.Collection("users"))
	userSvc := users.NewService(userRepo)
	projectRepo := projects.NewMongoRepository(db.Collection("projects"))
	skillRepo := skills.NewMongoRepository(db.Collection("skills"))
	educationRepo := education.NewMongoRepository(db.Collection("education"))
	contactRepo := contact.NewMongoRepository(db.Collection("contacts"))

	if created, err := userSvc.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatalf("failed to ensure admin account: %v", err)
	} else if created {
		logger.Infof("created admin account: %s", cfg.Admin.Email)
	}

	// Contact-form notifications are optional; without SMTP the message is
	// still stored, just not mailed.
	var notifier mailer.Notifier
	if cfg.SMTP.Host != "" {
		notifier = mailer.New(cfg.SMTP)
		logger.Infof("contact notifications enabled via %s:%s", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		logger.Warnf("EMAIL_HOST not set; contact notifications disabled")
	}

	// Project image storage is optional as well.
	var imageStore handlers.ImageStore
	if mc := storage.LoadMinIOConfig(); mc.Endpoint != "" {
		store, err := storage.NewImageStore(mc)
		if err != nil {
			logger.Fatalf("failed to initialize image store: %v", err)
		}
		imageStore = store
		logger.Infof("image storage enabled: %s/%s", mc.Endpoint, mc.Bucket)
	}

	auth := middleware.AuthMiddleware(tokens.NewVerifier(cfg.JWT.Secret))

	api := r.Group("/api")
	handlers.RegisterHealth(api)
	handlers.RegisterAuth(api, cfg, userSvc, auth)
	handlers.RegisterProjects(api, projectRepo, imageStore, auth)
	handlers.RegisterSkills(api, skillRepo, auth)
	handlers.RegisterEducation(api, educationRepo, auth)
	handlers.RegisterContact(api, contactRepo, notifier, auth)
	handlers.RegisterNoRoute(r)

	// readiness endpoint: 200 only when the database connection is established
	r.GET("/ready", func(c *gin.Context) {
		if connector.State() != database.StateReady {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ready": true})
	})

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}
}
