package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/authz"
)

// RequireRole enforces that the authenticated user holds one of the given
// roles.  It assumes JWTAuth already stored the role claim in the context
// under "role"; a missing or unknown role is rejected with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// RequireCapability enforces a capability derived from the role claim via
// the authz table.  Using the shared derivation keeps the authorization
// surface in one place instead of per-route role lists.
func RequireCapability(check func(authz.Capabilities) bool) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, _ := c.Get("role").(string)
            if !check(authz.For(role)) {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
