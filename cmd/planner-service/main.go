package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goap-planner/cmd/planner-service/api"
	"goap-planner/internal/audit"
	"goap-planner/internal/authn"
	"goap-planner/internal/cache"
	"goap-planner/internal/config"
	"goap-planner/internal/events"
	"goap-planner/internal/health"
	"goap-planner/internal/logging"
	"goap-planner/internal/metrics"
	"goap-planner/internal/store"
	"goap-planner/internal/trace"
)

func main() {
	logging.InitLogger()
	log.Println("Starting GOAP planner service...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Default()
	if path := os.Getenv("PLANNER_CONFIG_FILE"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			log.Fatal("Failed to load config file:", err)
		}
		cfg = loaded
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		log.Fatal("FATAL: JWT_SIGNING_KEY environment variable must be set. Generate with: openssl rand -hex 32")
	}
	if len(jwtSigningKey) < 32 {
		log.Fatal("FATAL: JWT_SIGNING_KEY must be at least 32 characters long")
	}

	log.Printf("Connecting to Postgres...")
	poolConfig, err := pgxpool.ParseConfig(cfg.PostgresURL)
	if err != nil {
		log.Fatal("Failed to parse Postgres URL:", err)
	}
	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to connect to Postgres:", err)
	}
	defer dbPool.Close()

	log.Printf("Connecting to Redis...")
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	log.Printf("Connecting to NATS...")
	natsConn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatal("Failed to connect to NATS:", err)
	}
	defer natsConn.Close()

	log.Printf("Connecting to MongoDB...")
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)
	mongoDB := mongoClient.Database("planner")

	// Repositories and supporting stores
	libraryRepo := store.NewPostgresRepository(dbPool)
	auditStore := audit.NewPostgresStore(dbPool)
	traceRepo := trace.NewRepository(mongoDB)
	queryCache := cache.NewQueryCache(redisClient, cfg.GetQueryCacheTTL())
	planCache := cache.NewPlanCache(queryCache)
	publisher := events.NewPublisher(natsConn)
	defer publisher.Close()

	tokenManager := authn.NewTokenManager([]byte(jwtSigningKey), "goap-planner")
	healthChecker := health.NewHealthChecker(dbPool, redisPinger{redisClient}, natsConn)

	// Periodic job: revalidate stored libraries still parse cleanly,
	// surfacing drift between the jsonb payload and library.Parse's rules
	// before a caller hits it mid-request.
	cronScheduler := cron.New()
	_, err = cronScheduler.AddFunc(cfg.GetCronSchedule(), func() {
		revalidateLibraries(ctx, libraryRepo)
	})
	if err != nil {
		log.Fatal("Failed to schedule library revalidation job:", err)
	}
	cronScheduler.Start()
	defer cronScheduler.Stop()

	planHandler := api.NewPlanHandler(libraryRepo, planCache, auditStore, traceRepo, publisher, cfg.GetDefaultMaxSearchNodes())
	libraryHandler := api.NewLibraryHandler(libraryRepo)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", metrics.Handler())
	r.Mount("/healthz", healthChecker.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(authn.Middleware(tokenManager))

		r.Post("/plan", planHandler.Plan)

		r.Route("/libraries", func(r chi.Router) {
			r.Post("/", libraryHandler.Create)
			r.Get("/", libraryHandler.List)
			r.Get("/{id}", libraryHandler.Get)
			r.Put("/{id}", libraryHandler.Update)
			r.Delete("/{id}", libraryHandler.Delete)
		})
	})

	server := &http.Server{
		Addr:         cfg.GetListenAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down planner service...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Planner service listening on %s", cfg.GetListenAddr())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server error:", err)
	}

	log.Println("Planner service stopped")
}

// redisPinger adapts *redis.Client's Ping, which returns a *StatusCmd, to
// health.Pinger's plain error return.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// revalidateLibraries re-parses every stored library's jsonb payload via
// ListLibraries, catching drift introduced by a manual database edit
// before a caller's /v1/plan request discovers it. ListLibraries stops at
// the first library that fails to parse, so only that failure is logged.
func revalidateLibraries(ctx context.Context, repo store.Repository) {
	libs, err := repo.ListLibraries(ctx)
	if err != nil {
		logging.LogError(ctx, err, "library revalidation: failed to list libraries", nil)
		return
	}
	logging.LogInfo(ctx, "library revalidation complete", map[string]interface{}{"count": len(libs)})
}
