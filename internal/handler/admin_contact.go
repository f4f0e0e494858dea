package handler

// Admin handlers for contact info and social links.  Contact writes bracket
// themselves with ContactCache.Pause/Resume so the poller never overwrites
// a fresh change with a read that raced the transaction.

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
    "github.com/luxedrive/rental-api/internal/service"
)

type ContactAdminHandler struct {
    Contact *repository.ContactRepo
    Cache   *service.ContactCache
}

func NewContactAdminHandler(r *repository.ContactRepo, cache *service.ContactCache) *ContactAdminHandler {
    return &ContactAdminHandler{Contact: r, Cache: cache}
}

type contactPatchReq struct {
    Phone   *string `json:"phone"`
    Email   *string `json:"email"`
    Hours   *string `json:"hours"`
    Address *string `json:"address"`
}

type socialReq struct {
    Platform string `json:"platform" validate:"required"`
    Link     string `json:"link" validate:"required,url"`
    Active   *bool  `json:"active"`
}

// GetInfo returns the contact singleton with per-field timestamps, read
// straight from the database so the admin panel never sees cache lag.
func (h *ContactAdminHandler) GetInfo(c echo.Context) error {
    info, err := h.Contact.GetInfo(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, info)
}

// PatchInfo updates only the supplied contact fields, each getting its own
// updated-at stamp.
func (h *ContactAdminHandler) PatchInfo(c echo.Context) error {
    var req contactPatchReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    fields := map[string]string{}
    if req.Phone != nil {
        fields["phone"] = strings.TrimSpace(*req.Phone)
    }
    if req.Email != nil {
        fields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
    }
    if req.Hours != nil {
        fields["hours"] = strings.TrimSpace(*req.Hours)
    }
    if req.Address != nil {
        fields["address"] = strings.TrimSpace(*req.Address)
    }
    if len(fields) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
    }

    h.Cache.Pause()
    defer h.Cache.Resume(c.Request().Context())

    if err := h.Contact.PatchInfo(c.Request().Context(), fields); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update contact failed"})
    }
    info, err := h.Contact.GetInfo(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load contact failed"})
    }
    return c.JSON(http.StatusOK, info)
}

// ListSocial returns every social link, inactive ones included.
func (h *ContactAdminHandler) ListSocial(c echo.Context) error {
    links, err := h.Contact.ListSocial(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": links})
}

// AddSocial creates a social link.  New links default to active.
func (h *ContactAdminHandler) AddSocial(c echo.Context) error {
    var req socialReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "platform and a valid link are required"})
    }
    active := true
    if req.Active != nil {
        active = *req.Active
    }
    s := model.SocialLink{Platform: strings.TrimSpace(req.Platform), Link: req.Link, Active: active}

    h.Cache.Pause()
    defer h.Cache.Resume(c.Request().Context())

    if err := h.Contact.AddSocial(c.Request().Context(), &s); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create social link failed"})
    }
    return c.JSON(http.StatusCreated, s)
}

// DeleteSocial removes a social link.
func (h *ContactAdminHandler) DeleteSocial(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    h.Cache.Pause()
    defer h.Cache.Resume(c.Request().Context())

    if err := h.Contact.DeleteSocial(c.Request().Context(), id); err != nil {
        if err == repository.ErrSocialNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "social link not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete social link failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
