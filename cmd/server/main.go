package main

import (
    "context"
    "log"
    "time"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/iliyamo/hotel-room-reservation/internal/config"
    "github.com/iliyamo/hotel-room-reservation/internal/database"
    "github.com/iliyamo/hotel-room-reservation/internal/handler"
    "github.com/iliyamo/hotel-room-reservation/internal/hotel"
    "github.com/iliyamo/hotel-room-reservation/internal/queue"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
    "github.com/iliyamo/hotel-room-reservation/internal/router"
    "github.com/iliyamo/hotel-room-reservation/internal/service"
)

func main() {
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("db open: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    if err := database.Migrate(ctx, db); err != nil {
        cancel()
        log.Fatalf("db migrate: %v", err)
    }
    cancel()

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable: cache and rate limiting disabled")
    } else {
        defer rdb.Close()
    }

    // The publisher is only wired when the broker is enabled; a nil
    // interface value keeps bookings working without RabbitMQ.
    var events handler.EventPublisher
    if cfg.AMQPEnabled {
        events = service.NewPublisher(cfg.AMQPURL)
        go queue.StartBookingConsumer(cfg.AMQPURL)
    }

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())

    router.RegisterRoutes(e, router.Deps{
        Health:    handler.Health(db),
        Auth:      handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db)),
        Hotel:     handler.NewHotelHandler(hotel.NewStore(), events),
        JWTSecret: cfg.JWTSecret,
        Redis:     rdb,
        Cache:     config.LoadCacheConfig(),
        RateLimit: config.LoadRateLimitConfig(),
    })

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
