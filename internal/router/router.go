package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-room-reservation/internal/config"
    "github.com/iliyamo/hotel-room-reservation/internal/handler"
    "github.com/iliyamo/hotel-room-reservation/internal/middleware"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// Deps carries everything the routes need.  Redis may be nil, in which case
// caching and rate limiting are disabled.
type Deps struct {
    Health    echo.HandlerFunc
    Auth      *handler.AuthHandler
    Hotel     *handler.HotelHandler
    JWTSecret string
    Redis     *redis.Client
    Cache     config.CacheConfig
    RateLimit config.RateLimitConfig
}

// RegisterRoutes wires every route group onto e.
func RegisterRoutes(e *echo.Echo, d Deps) {
    e.GET("/healthz", d.Health)
    RegisterAuth(e, d.Auth, d.JWTSecret)
    RegisterPublic(e, d.Hotel, middleware.NewRedisCache(d.Cache, d.Redis))
    RegisterStaff(e, d.Hotel, d.JWTSecret, middleware.NewTokenBucket(d.RateLimit, d.Redis))
    RegisterManager(e, d.Hotel, d.JWTSecret)
}

// RegisterAuth registers session endpoints under /v1/auth and the
// protected /v1/me.  Logout does not require a valid access token: a
// refresh token in the body is enough.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh) // rotates the refresh token
    g.POST("/logout", a.Logout)

    e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret), staffOnly())
}

// RegisterPublic registers the read-only hotel endpoints.  Travel-time and
// span answers depend only on the query, so they go through cache.
func RegisterPublic(e *echo.Echo, h *handler.HotelHandler, cache echo.MiddlewareFunc) {
    g := e.Group("/v1")
    g.GET("/rooms", h.ListRooms)
    g.GET("/rooms/:id", h.GetRoom)
    g.GET("/floors", h.Floors)
    g.GET("/stats", h.Stats)
    g.GET("/travel-time", h.TravelTime, cache)
    g.GET("/span", h.Span, cache)
    g.POST("/allocation/preview", h.Preview)
}

// RegisterStaff registers booking and front-desk endpoints.  Only booking
// creation is rate limited; the limiter runs after JWTAuth so it can key on
// the user.  Middleware stays per route: Group.Use would turn 404s under
// /v1 into 401s.
func RegisterStaff(e *echo.Echo, h *handler.HotelHandler, jwtSecret string, limit echo.MiddlewareFunc) {
    auth := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret), staffOnly()}
    g := e.Group("/v1")
    g.POST("/bookings", h.Book, append(auth, limit)...)
    g.GET("/bookings", h.ListBookings, auth...)
    g.POST("/rooms/check-in", h.CheckIn, auth...)
    g.POST("/rooms/check-out", h.CheckOut, auth...)
}

// RegisterManager registers the whole-hotel operations.
func RegisterManager(e *echo.Echo, h *handler.HotelHandler, jwtSecret string) {
    auth := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleManager)}
    g := e.Group("/v1/hotel")
    g.POST("/randomize", h.Randomize, auth...)
    g.POST("/reset", h.Reset, auth...)
}

func staffOnly() echo.MiddlewareFunc {
    return middleware.RequireRole(model.RoleStaff, model.RoleManager)
}
