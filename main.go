package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studentmanagement/students-api/handlers"
	"github.com/studentmanagement/students-api/internal/config"
	"github.com/studentmanagement/students-api/internal/courses"
	"github.com/studentmanagement/students-api/internal/database"
	"github.com/studentmanagement/students-api/internal/models"
	"github.com/studentmanagement/students-api/internal/repository"
	"github.com/studentmanagement/students-api/internal/store"
	"github.com/studentmanagement/students-api/internal/students"
	"github.com/studentmanagement/students-api/pkg/logger"
	"github.com/studentmanagement/students-api/pkg/metrics"
	"github.com/studentmanagement/students-api/pkg/middleware"
)

func main() {
	// LOG_LEVEL is read before config so config loading itself can log
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.Configure(os.Stdout, cfg.Log.Pretty)
	logger.Infof("config loaded: env=%s mongo=%v redis=%v", cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger())

	checks := map[string]handlers.Pinger{}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.RedisAddr(), err)
		} else {
			logger.Infof("connected to Redis: %s", cfg.RedisAddr())
		}
		defer func() { _ = redisClient.Close() }()
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter: redis, %.1f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: memory, %.1f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	studentCol, courseCol, storeKind, client := openCollections(ctx, cfg)
	if client != nil {
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		checks["mongodb"] = func(ctx context.Context) error { return database.Ping(ctx, client, cfg.MongoDB.Timeout) }
	}

	studentSvc := students.NewService(repository.New[models.Student](studentCol))
	courseSvc := courses.NewService(repository.New[models.Course](courseCol))

	api := r.Group("/api/v1")
	handlers.RegisterStudentRoutes(api, studentSvc)
	handlers.RegisterCourseRoutes(api, courseSvc)
	handlers.RegisterHealth(r, storeKind, checks)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting students-api on %s (store=%s)", srv.Addr, storeKind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// openCollections returns MongoDB-backed collections when MONGODB_URI is set
// and reachable, otherwise in-memory ones.
func openCollections(ctx context.Context, cfg *config.Config) (store.Collection[models.Student], store.Collection[models.Course], string, *mongo.Client) {
	memory := func() (store.Collection[models.Student], store.Collection[models.Course], string, *mongo.Client) {
		return store.NewInstrumented[models.Student](store.NewMemoryCollection[models.Student](cfg.Collections.Students)),
			store.NewInstrumented[models.Course](store.NewMemoryCollection[models.Course](cfg.Collections.Courses)),
			"memory", nil
	}
	if cfg.MongoDB.URI == "" {
		logger.Warnf("MONGODB_URI not set: using in-memory store, data is lost on restart")
		return memory()
	}

	client, err := database.ConnectWithBackoff(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
	if err != nil {
		logger.Warnf("could not connect to MongoDB after %d attempts (%v): using in-memory store", cfg.MongoDB.ConnectAttempts, err)
		return memory()
	}

	db := client.Database(cfg.MongoDB.Database)
	sc, err := store.NewMongoCollection[models.Student](ctx, db.Collection(cfg.Collections.Students), "createdAt")
	if err != nil {
		logger.Fatalf("failed to prepare %s collection: %v", cfg.Collections.Students, err)
	}
	cc, err := store.NewMongoCollection[models.Course](ctx, db.Collection(cfg.Collections.Courses), "createdAt", "lecturerId", "name")
	if err != nil {
		logger.Fatalf("failed to prepare %s collection: %v", cfg.Collections.Courses, err)
	}
	logger.Infof("connected to MongoDB database %s", cfg.MongoDB.Database)
	return store.NewInstrumented[models.Student](sc), store.NewInstrumented[models.Course](cc), "mongodb", client
}
