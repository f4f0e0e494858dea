package router

import (
    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/handler"
    "github.com/luxedrive/rental-api/internal/middleware"
    "github.com/luxedrive/rental-api/internal/model"
)

// RegisterClient registers the authenticated client endpoints: bookings and
// favorites.  Staff roles are accepted too so an admin can exercise the
// client flow with their own account.
func RegisterClient(e *echo.Echo, b *handler.BookingHandler, f *handler.FavoriteHandler, jwtSecret string) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(model.RoleClient, model.RoleAdmin, model.RoleManager, model.RoleAgent))

    // Booking requests ("Rent Now") and the "My Garage" history view.
    g.POST("/bookings", b.Create)
    g.GET("/bookings/my", b.ListMine)

    // Starred cars.
    g.GET("/favorites", f.List)
    g.POST("/favorites/:car_id/toggle", f.Toggle)
}
