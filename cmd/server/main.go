package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/mkhach/grad-seating/internal/config"
	"github.com/mkhach/grad-seating/internal/database"
	"github.com/mkhach/grad-seating/internal/handler"
	"github.com/mkhach/grad-seating/internal/middleware"
	"github.com/mkhach/grad-seating/internal/queue"
	"github.com/mkhach/grad-seating/internal/router"
	"github.com/mkhach/grad-seating/internal/service"
	"github.com/mkhach/grad-seating/internal/store"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env file")
	}
	cfg := config.Load()

	// Pick the table store backend.  MySQL is the default; the
	// in-memory store exists for demos and local poking.
	var st store.TableStore
	switch cfg.StoreBackend {
	case "memory":
		st = store.NewMemoryStore(nil, nil)
		log.Println("using in-memory table store (data is not persisted)")
	default:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect: %v", err)
		}
		ms := store.NewMySQLStore(db)
		if err := ms.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("mysql schema: %v", err)
		}
		st = ms
	}

	// Redis-backed response cache for the public views.  A nil client
	// disables caching without disabling the endpoints.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; public-view caching disabled")
	}
	cache := middleware.NewSnapshotCache(config.LoadCacheConfig(), rdb)

	// Confirmation events go through RabbitMQ; the consumer tails the
	// queue into logs/reservations.log in the background.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	bookings := service.NewBookingService(st, queue.NewPublisher(), cache)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterReservations(e, handler.NewReservationHandler(bookings))
	router.RegisterPublic(e, handler.NewPublicHandler(st, cfg.NearlyFullThreshold), cache)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, st), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
