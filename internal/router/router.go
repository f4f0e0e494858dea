package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/handler"
    "github.com/luxedrive/rental-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Used by load balancers and monitoring to verify the service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes.  Unauthenticated
// operations live under /v1/auth; the optional rate limiter fronts them so
// credential stuffing hits the bucket before it hits bcrypt.  Protected
// identity endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
    g := e.Group("/v1/auth")
    if limiter != nil {
        g.Use(limiter)
    }
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Rotates the refresh token.
    g.POST("/refresh", a.Refresh)
    // Issues a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout does not require JWT authentication: it accepts a refresh_token
    // body or a bearer header, so an expired session can still log out.
    g.POST("/logout", a.Logout)
    // Non-authoritative session introspection; decodes without verifying.
    g.POST("/session", a.Session)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    // /v1/me answers for every known role, client included.
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated storefront browse endpoints.
// The optional cache middleware fronts them; every response here is already
// sanitized to publicly visible data, so caching is safe.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
    g := e.Group("/v1")
    if cache != nil {
        g.Use(cache)
    }
    g.GET("/brands", p.GetBrands)
    // Filtered, paginated catalog; see the query parameters on GetCars.
    g.GET("/cars", p.GetCars)
    g.GET("/cars/:id", p.GetCar)
    g.GET("/hero", p.GetHero)
    g.GET("/logo", p.GetLogo)
    g.GET("/gallery", p.GetGallery)
    g.GET("/faqs", p.GetFAQs)
    // Served from the in-memory contact cache, not the database.
    g.GET("/contact", p.GetContact)
}
