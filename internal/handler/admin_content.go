package handler

// Admin handlers for the content singletons: hero section, navbar branding
// and the two gallery variants.  Every write goes live immediately on the
// public endpoints (modulo the short response-cache TTL).

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

type ContentAdminHandler struct {
    Content *repository.ContentRepo
}

func NewContentAdminHandler(r *repository.ContentRepo) *ContentAdminHandler {
    return &ContentAdminHandler{Content: r}
}

type heroBackgroundReq struct {
    BackgroundImage string `json:"background_image" validate:"required"`
}

type heroCardReq struct {
    Title string           `json:"title" validate:"required"`
    Logo  string           `json:"logo"`
    Image string           `json:"image"`
    Specs []model.SpecItem `json:"specs"`
}

type logoReq struct {
    NavbarLogo  string `json:"navbar_logo"`
    CompanyName string `json:"company_name" validate:"required"`
}

type gallerySlotReq struct {
    ImageURL string `json:"image_url" validate:"required"`
    Alt      string `json:"alt"`
}

// GetHero returns the hero singleton for the admin editor.
func (h *ContentAdminHandler) GetHero(c echo.Context) error {
    hero, err := h.Content.GetHero(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, hero)
}

// PutHeroBackground replaces only the hero background image.
func (h *ContentAdminHandler) PutHeroBackground(c echo.Context) error {
    var req heroBackgroundReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "background_image is required"})
    }
    if err := h.Content.UpdateHeroBackground(c.Request().Context(), req.BackgroundImage); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update hero failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"background_image": req.BackgroundImage})
}

// PutHeroCard replaces the featured car card, spec list included.
func (h *ContentAdminHandler) PutHeroCard(c echo.Context) error {
    var req heroCardReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
    }
    card := model.HeroCard{Title: req.Title, Logo: req.Logo, Image: req.Image, Specs: req.Specs}
    if err := h.Content.UpdateHeroCard(c.Request().Context(), card); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update hero failed"})
    }
    return c.JSON(http.StatusOK, card)
}

// GetLogo returns the navbar branding singleton for the admin editor.
func (h *ContentAdminHandler) GetLogo(c echo.Context) error {
    logo, err := h.Content.GetLogo(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, logo)
}

// PutLogo replaces the navbar branding singleton.
func (h *ContentAdminHandler) PutLogo(c echo.Context) error {
    var req logoReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "company_name is required"})
    }
    l := model.LogoContent{NavbarLogo: req.NavbarLogo, CompanyName: req.CompanyName}
    if err := h.Content.UpdateLogo(c.Request().Context(), l); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update logo failed"})
    }
    return c.JSON(http.StatusOK, l)
}

// GetGallery returns both gallery variants for the admin editor.
func (h *ContentAdminHandler) GetGallery(c echo.Context) error {
    g, err := h.Content.GetGallery(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, g)
}

// PutGallerySlot writes one photo slot of a variant.  The variant and slot
// index come from the path; slot counts are bounded per variant.
func (h *ContentAdminHandler) PutGallerySlot(c echo.Context) error {
    variant := strings.ToLower(c.Param("variant"))
    slot, err := parseID(c, "slot")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot"})
    }
    var req gallerySlotReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "image_url is required"})
    }
    p := model.GalleryPhoto{Variant: variant, Slot: int(slot), ImageURL: req.ImageURL, Alt: req.Alt}
    if err := h.Content.PutGallerySlot(c.Request().Context(), p); err != nil {
        if err == repository.ErrSlotOutOfRange {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown variant or slot out of range"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update gallery failed"})
    }
    return c.JSON(http.StatusOK, p)
}
