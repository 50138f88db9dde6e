package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/marieteam/ferry-reservation/internal/booking"
	"github.com/marieteam/ferry-reservation/internal/config"
	"github.com/marieteam/ferry-reservation/internal/database"
	"github.com/marieteam/ferry-reservation/internal/handler"
	appmw "github.com/marieteam/ferry-reservation/internal/middleware"
	"github.com/marieteam/ferry-reservation/internal/queue"
	"github.com/marieteam/ferry-reservation/internal/repository"
	"github.com/marieteam/ferry-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the cache and rate limiter become
	// no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	accounts := repository.NewAccountRepo(db)
	tokens := repository.NewTokenRepo(db)
	ports := repository.NewPortRepo(db)
	liaisons := repository.NewLiaisonRepo(db)
	sailings := repository.NewSailingRepo(db)
	reservations := repository.NewReservationRepo(db)

	store := repository.NewBookingStore(db)
	resolver := booking.NewResolver(store)
	recorder := booking.NewRecorder(store)

	authHandler := handler.NewAuthHandler(cfg, accounts, tokens)
	publicHandler := &handler.PublicHandler{
		Ports:    ports,
		Liaisons: liaisons,
		Sailings: sailings,
		Resolver: resolver,
	}
	reservationHandler := handler.NewReservationHandler(recorder, reservations, cfg.PublishEvents)
	adminHandler := handler.NewAdminHandler(liaisons, reservations)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterPublic(e, publicHandler, appmw.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterCustomer(e, reservationHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	if cfg.PublishEvents {
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
