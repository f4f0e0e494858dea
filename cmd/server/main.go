package main // Entry point package

import (
    "context"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/config"
    "github.com/luxedrive/rental-api/internal/database"
    "github.com/luxedrive/rental-api/internal/handler"
    "github.com/luxedrive/rental-api/internal/logger"
    "github.com/luxedrive/rental-api/internal/middleware"
    "github.com/luxedrive/rental-api/internal/queue"
    "github.com/luxedrive/rental-api/internal/repository"
    "github.com/luxedrive/rental-api/internal/router"
    "github.com/luxedrive/rental-api/internal/service"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set the environment directly

    cfg := config.Load()
    log := logger.New()
    defer func() { _ = log.Sync() }()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalw("database connect failed", "err", err)
    }
    defer db.Close()

    // Redis is optional: a nil client disables the response cache and the
    // auth rate limiter rather than failing startup.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Warnw("redis unavailable, cache and rate limiting disabled")
    }

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    brands := repository.NewBrandRepo(db)
    cars := repository.NewCarRepo(db)
    content := repository.NewContentRepo(db, cfg.GalleryDesktopSlots, cfg.GalleryMobileSlots)
    faqs := repository.NewFAQRepo(db)
    contact := repository.NewContactRepo(db)
    bookings := repository.NewBookingRepo(db)
    favorites := repository.NewFavoriteRepo(db)

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    contactCache := service.NewContactCache(contact, log, time.Duration(cfg.ContactPollSeconds)*time.Second)
    contactCache.Start(ctx)

    // Long-expired refresh tokens are dead weight; sweep them at startup
    // with a week of grace for auditing.
    if n, err := tokens.PurgeExpired(ctx, 7*24*time.Hour); err != nil {
        log.Warnw("refresh token purge failed", "err", err)
    } else if n > 0 {
        log.Infow("purged expired refresh tokens", "count", n)
    }

    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Errorw("booking consumer stopped", "err", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true
    e.Validator = handler.NewValidator()

    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    authH := handler.NewAuthHandler(cfg, users, tokens)
    publicH := &handler.PublicHandler{
        Brands: brands, Cars: cars, Content: content, FAQs: faqs,
        Contact: contactCache, PageSize: cfg.CatalogPageSize, Log: log,
    }
    bookingH := handler.NewBookingHandler(bookings, cars, log)
    favoriteH := handler.NewFavoriteHandler(favorites, cars)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret, limiter)
    router.RegisterPublic(e, publicH, cache)
    router.RegisterClient(e, bookingH, favoriteH, cfg.JWTSecret)
    router.RegisterAdmin(e, router.AdminHandlers{
        Brands:   handler.NewBrandAdminHandler(brands),
        Cars:     handler.NewCarAdminHandler(cars),
        Content:  handler.NewContentAdminHandler(content),
        FAQs:     handler.NewFAQAdminHandler(faqs),
        Contact:  handler.NewContactAdminHandler(contact, contactCache),
        Users:    handler.NewUserAdminHandler(cfg, users),
        Bookings: handler.NewBookingAdminHandler(bookings, cars, log),
    }, cfg.JWTSecret)

    go func() {
        addr := ":" + cfg.Port
        log.Infow("listening", "addr", addr, "env", cfg.Env)
        if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
            log.Fatalw("server failed", "err", err)
        }
    }()

    <-ctx.Done()
    log.Infow("shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        log.Errorw("shutdown failed", "err", err)
    }
}
