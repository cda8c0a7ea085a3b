package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/railswift/railswift/internal/catalog"
	"github.com/railswift/railswift/internal/config"
	"github.com/railswift/railswift/internal/database"
	"github.com/railswift/railswift/internal/handler"
	"github.com/railswift/railswift/internal/middleware"
	"github.com/railswift/railswift/internal/queue"
	"github.com/railswift/railswift/internal/repository"
	"github.com/railswift/railswift/internal/router"
	queue_publisher "github.com/railswift/railswift/internal/service"
	"github.com/railswift/railswift/internal/store"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := config.Load()

	db, err := database.Open(cfg.DBDriver, cfg.DBUser, cfg.DBPass,
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	st, err := store.New(db)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	accounts := repository.NewAccountRepo(st)
	bookings := repository.NewBookingRepo(st)
	searches := repository.NewSearchRepo(st)
	cat := catalog.New()

	// Redis is optional; a nil client turns the cache and rate limiter
	// into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limiting disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts), cfg.JWTSecret)
	router.RegisterBookings(e, handler.NewBookingHandler(cfg, bookings), cfg.JWTSecret)
	router.RegisterPublic(e,
		handler.NewCatalogHandler(cat),
		handler.NewSearchHandler(cat, searches),
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	)

	if cfg.QueueEnabled {
		go func() {
			if err := queue.StartLifecycleConsumer(queue_publisher.BrokerURL()); err != nil {
				log.Printf("lifecycle consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
