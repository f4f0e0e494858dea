package router

import (
    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/authz"
    "github.com/luxedrive/rental-api/internal/handler"
    "github.com/luxedrive/rental-api/internal/middleware"
    "github.com/luxedrive/rental-api/internal/model"
)

// AdminHandlers groups the handlers mounted under /v1/admin so the
// registration signature stays readable.
type AdminHandlers struct {
    Brands   *handler.BrandAdminHandler
    Cars     *handler.CarAdminHandler
    Content  *handler.ContentAdminHandler
    FAQs     *handler.FAQAdminHandler
    Contact  *handler.ContactAdminHandler
    Users    *handler.UserAdminHandler
    Bookings *handler.BookingAdminHandler
}

// RegisterAdmin registers the CMS endpoints under /v1/admin.  Reads are
// gated on the view capability (admin, manager, agent); writes on the
// create/edit/delete capabilities (admin, manager).  Brand mutations and
// user management are tighter still.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
    g := e.Group("/v1/admin")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireCapability(func(c authz.Capabilities) bool { return c.CanView }))

    canCreate := middleware.RequireCapability(func(c authz.Capabilities) bool { return c.CanCreate })
    canEdit := middleware.RequireCapability(func(c authz.Capabilities) bool { return c.CanEdit })
    canDelete := middleware.RequireCapability(func(c authz.Capabilities) bool { return c.CanDelete })
    adminOnly := middleware.RequireRole(model.RoleAdmin)
    canRoles := middleware.RequireCapability(func(c authz.Capabilities) bool { return c.CanAccessRoles })

    // Brands.  Mutations are admin-only; managers can look but not touch.
    g.GET("/brands", h.Brands.List)
    g.POST("/brands", h.Brands.Create, adminOnly)
    g.PUT("/brands/:id", h.Brands.Update, adminOnly)
    g.PATCH("/brands/:id", h.Brands.Patch, adminOnly)
    g.PATCH("/brands/:id/visibility", h.Brands.SetVisibility, adminOnly)
    g.DELETE("/brands/:id", h.Brands.Delete, adminOnly)

    // Cars.
    g.GET("/cars", h.Cars.List)
    g.POST("/cars", h.Cars.Create, canCreate)
    g.PUT("/cars/:id", h.Cars.Update, canEdit)
    g.DELETE("/cars/:id", h.Cars.Delete, canDelete)

    // Content singletons: hero, logo, gallery.
    g.GET("/hero", h.Content.GetHero)
    g.PUT("/hero/background", h.Content.PutHeroBackground, canEdit)
    g.PUT("/hero/card", h.Content.PutHeroCard, canEdit)
    g.GET("/logo", h.Content.GetLogo)
    g.PUT("/logo", h.Content.PutLogo, canEdit)
    g.GET("/gallery", h.Content.GetGallery)
    g.PUT("/gallery/:variant/:slot", h.Content.PutGallerySlot, canEdit)

    // Site-wide FAQs.
    g.GET("/faqs", h.FAQs.List)
    g.POST("/faqs", h.FAQs.Create, canCreate)
    g.PUT("/faqs/:id", h.FAQs.Update, canEdit)
    g.PATCH("/faqs/:id/visibility", h.FAQs.SetVisibility, canEdit)
    g.DELETE("/faqs/:id", h.FAQs.Delete, canDelete)

    // Contact info and social links.
    g.GET("/contact", h.Contact.GetInfo)
    g.PATCH("/contact", h.Contact.PatchInfo, canEdit)
    g.GET("/contact/social", h.Contact.ListSocial)
    g.POST("/contact/social", h.Contact.AddSocial, canCreate)
    g.DELETE("/contact/social/:id", h.Contact.DeleteSocial, canDelete)

    // Accounts and roles.
    g.GET("/users", h.Users.List)
    g.POST("/users", h.Users.Create, canRoles)
    g.PATCH("/users/:id/role", h.Users.UpdateRole, canRoles)

    // Booking queue.
    g.GET("/bookings", h.Bookings.List)
    g.PATCH("/bookings/:id/status", h.Bookings.Decide, canEdit)
}
