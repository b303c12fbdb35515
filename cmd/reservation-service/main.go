package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"tipton-reservations/internal/auth"
	"tipton-reservations/internal/availability"
	availdb "tipton-reservations/internal/availability/db"
	"tipton-reservations/internal/booking"
	"tipton-reservations/internal/booking/api"
	"tipton-reservations/internal/config"
	"tipton-reservations/internal/database/migrations"
	"tipton-reservations/internal/directory"
	"tipton-reservations/internal/events"
	"tipton-reservations/internal/ledger"
	ledgerdb "tipton-reservations/internal/ledger/db"
	applog "tipton-reservations/internal/logger"
	"tipton-reservations/internal/payments"
	"tipton-reservations/internal/payments/storage"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()
	logger := applog.NewLogger()
	defer logger.Close()

	// --- PostgreSQL Setup ---
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN))
	sqldb := sql.OpenDB(connector)
	defer sqldb.Close()

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	migrateOpts := migrations.DefaultOptions()
	migrateOpts.SeedData = os.Getenv("SEED_DATA") == "true"
	runner := migrations.NewRunner(bunDB, migrateOpts, logger)
	if migrateOpts.AutoMigrate {
		if err := runner.Run(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}
	defer runner.Close()

	// --- Redis Setup (availability listing cache) ---
	var listingCache availability.ListingCache
	if cfg.Redis.AvailabilityCache {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		listingCache = availability.NewRedisListingCache(redisClient, cfg.Redis.AvailabilityTTL, logger)
	}

	// --- Kafka Setup ---
	var publisher booking.EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		if err := events.EnsureTopicExists(cfg.Kafka.Brokers, cfg.Kafka.Topic); err != nil {
			logger.Warn("EVENTS", fmt.Sprintf("could not ensure topic %s: %v", cfg.Kafka.Topic, err))
		}
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		publisher = producer
	}

	// --- Stripe Setup ---
	gateway, err := payments.NewStripeGateway(cfg.Stripe.SecretKey, logger)
	if err != nil {
		log.Fatalf("Failed to initialize Stripe: %v", err)
	}

	paymentStore, err := storage.NewPostgreSQLStoreWithDB(sqldb, logger)
	if err != nil {
		log.Fatalf("Failed to initialize payment store: %v", err)
	}

	// --- Initialize Services ---
	clock, err := ledger.NewHotelClock(cfg.Hotel.Timezone, cfg.Hotel.CheckInHour)
	if err != nil {
		log.Fatalf("Failed to load hotel timezone: %v", err)
	}

	availabilitySvc := availability.NewService(&availdb.DB{Bun: bunDB}, listingCache, logger)
	ledgerSvc := ledger.NewService(&ledgerdb.DB{Bun: bunDB}, clock, logger)
	reconciler := payments.NewReconciler(gateway, paymentStore, logger, cfg.Stripe.Currency)
	users := directory.NewUserDirectory(bunDB)
	roomTypes := directory.NewRoomTypeCatalog(bunDB)

	bookingSvc := booking.NewService(ledgerSvc, availabilitySvc, reconciler, users, roomTypes, publisher, logger)
	handler := api.NewHandler(bookingSvc, logger)

	// --- Setup Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if err := paymentStore.HealthCheck(); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware())
		handler.Routes(r)
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("SERVER", fmt.Sprintf("Reservation service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("SERVER", "Shutdown signal received, cleaning up")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("SERVER", "Server exited gracefully")
}
