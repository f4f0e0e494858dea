// Public storefront handlers.  These routes require no authentication and
// return only publicly visible data: active brands, the car catalog,
// visible FAQs and the content singletons.  Admin writes are live
// immediately; there is no draft/published split.
package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/luxedrive/rental-api/internal/catalog"
    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
    "github.com/luxedrive/rental-api/internal/service"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// browsing plus the contact cache.
type PublicHandler struct {
    Brands   *repository.BrandRepo
    Cars     *repository.CarRepo
    Content  *repository.ContentRepo
    FAQs     *repository.FAQRepo
    Contact  *service.ContactCache
    PageSize int
    Log      *zap.SugaredLogger
}

// GetBrands lists active brands.  When the database is unreachable the
// built-in default brand list is served instead, run through the same
// visibility filter, so the storefront stays up during an outage.
func (h *PublicHandler) GetBrands(c echo.Context) error {
    brands, err := h.Brands.ListVisible(c.Request().Context())
    if err != nil {
        h.Log.Warnw("brand list failed, serving defaults", "err", err)
        return c.JSON(http.StatusOK, echo.Map{"items": model.VisibleBrands(model.DefaultBrands()), "fallback": true})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": brands})
}

// GetCars serves the filtered, paginated catalog.  The full list is
// fetched once and filtered in memory as a conjunction of the optional
// query parameters; pagination is a fixed page size.
func (h *PublicHandler) GetCars(c echo.Context) error {
    cars, err := h.Cars.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    f := catalog.DefaultFilter()
    f.Search = c.QueryParam("search")
    f.Category = c.QueryParam("category")
    f.Brand = c.QueryParam("brand")
    f.FuelType = c.QueryParam("fuel_type")
    f.Transmission = c.QueryParam("transmission")
    if v := c.QueryParam("price_min"); v != "" {
        if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
            f.PriceMin = n
        }
    }
    if v := c.QueryParam("price_max"); v != "" {
        if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
            f.PriceMax = n
        }
    }
    page := 1
    if v := c.QueryParam("page"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            page = n
        }
    }

    return c.JSON(http.StatusOK, catalog.Paginate(catalog.Apply(cars, f), page, h.PageSize))
}

// GetCar returns a single car with all detail sections.
func (h *PublicHandler) GetCar(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    car, err := h.Cars.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrCarNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, car)
}

// GetHero returns the hero singleton.
func (h *PublicHandler) GetHero(c echo.Context) error {
    hero, err := h.Content.GetHero(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, hero)
}

// GetLogo returns the navbar branding singleton.
func (h *PublicHandler) GetLogo(c echo.Context) error {
    logo, err := h.Content.GetLogo(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, logo)
}

// GetGallery returns both gallery variants.
func (h *PublicHandler) GetGallery(c echo.Context) error {
    g, err := h.Content.GetGallery(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, g)
}

// GetFAQs lists publicly visible FAQ entries in position order.
func (h *PublicHandler) GetFAQs(c echo.Context) error {
    faqs, err := h.FAQs.ListVisible(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": faqs})
}

// GetContact serves contact info and active social links from the contact
// cache rather than the database; the cache refreshes on its own interval.
func (h *PublicHandler) GetContact(c echo.Context) error {
    info, social := h.Contact.Snapshot()
    active := make([]model.SocialLink, 0, len(social))
    for _, s := range social {
        if s.Active {
            active = append(active, s)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"info": info, "social": active})
}
