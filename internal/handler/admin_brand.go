package handler

import (
    "database/sql"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

// BrandAdminHandler serves the admin brand CRUD.  Route-level middleware
// restricts these endpoints to admins.
type BrandAdminHandler struct {
    Brands *repository.BrandRepo
}

func NewBrandAdminHandler(r *repository.BrandRepo) *BrandAdminHandler {
    return &BrandAdminHandler{Brands: r}
}

type brandReq struct {
    Name        string `json:"name" validate:"required,min=1"`
    Logo        string `json:"logo"`
    Description string `json:"description"`
    IsActive    *bool  `json:"is_active"`
}

// brandPatchReq carries a partial update; nil fields are left untouched.
type brandPatchReq struct {
    Name        *string `json:"name"`
    Logo        *string `json:"logo"`
    Description *string `json:"description"`
    IsActive    *bool   `json:"is_active"`
}

// merge applies the supplied fields onto b and reports whether any field
// was present in the request.
func (req brandPatchReq) merge(b *model.Brand) bool {
    touched := false
    if req.Name != nil {
        b.Name = strings.TrimSpace(*req.Name)
        touched = true
    }
    if req.Logo != nil {
        b.Logo = *req.Logo
        touched = true
    }
    if req.Description != nil {
        b.Description = *req.Description
        touched = true
    }
    if req.IsActive != nil {
        b.IsActive = *req.IsActive
        touched = true
    }
    return touched
}

type visibilityReq struct {
    IsActive *bool `json:"is_active" validate:"required"`
}

// List returns every brand, hidden ones included.
func (h *BrandAdminHandler) List(c echo.Context) error {
    brands, err := h.Brands.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": brands})
}

// Create adds a brand.  New brands default to visible unless is_active is
// explicitly false.
func (h *BrandAdminHandler) Create(c echo.Context) error {
    var req brandReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    active := true
    if req.IsActive != nil {
        active = *req.IsActive
    }
    b := model.Brand{Name: req.Name, Logo: req.Logo, Description: req.Description, IsActive: active}
    if err := h.Brands.Create(c.Request().Context(), &b); err != nil {
        if err == repository.ErrConflict {
            return c.JSON(http.StatusConflict, echo.Map{"error": "brand already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create brand failed"})
    }
    return c.JSON(http.StatusCreated, b)
}

// Update replaces a brand's mutable fields.
func (h *BrandAdminHandler) Update(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req brandReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    active := true
    if req.IsActive != nil {
        active = *req.IsActive
    }
    err = h.Brands.Update(c.Request().Context(), id, req.Name, req.Logo, req.Description, active)
    switch {
    case err == nil:
    case err == sql.ErrNoRows:
        return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
    case err == repository.ErrConflict:
        return c.JSON(http.StatusConflict, echo.Map{"error": "brand already exists"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update brand failed"})
    }
    b, err := h.Brands.GetByID(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load brand failed"})
    }
    return c.JSON(http.StatusOK, b)
}

// Patch updates only the supplied fields of a brand, preserving everything
// the request omits.  An omitted is_active in particular must never
// re-activate a hidden brand.
func (h *BrandAdminHandler) Patch(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req brandPatchReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must not be blank"})
    }
    if (req == brandPatchReq{}) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
    }

    b, err := h.Brands.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrBrandNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    req.merge(b)

    err = h.Brands.Update(c.Request().Context(), id, b.Name, b.Logo, b.Description, b.IsActive)
    switch {
    case err == nil:
    case err == sql.ErrNoRows:
        return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
    case err == repository.ErrConflict:
        return c.JSON(http.StatusConflict, echo.Map{"error": "brand already exists"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update brand failed"})
    }
    return c.JSON(http.StatusOK, b)
}

// SetVisibility toggles whether the brand appears on the storefront.  The
// row itself is untouched so the toggle is fully reversible.
func (h *BrandAdminHandler) SetVisibility(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req visibilityReq
    if err := c.Bind(&req); err != nil || req.IsActive == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_active is required"})
    }
    if err := h.Brands.SetVisibility(c.Request().Context(), id, *req.IsActive); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update brand failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"id": id, "is_active": *req.IsActive})
}

// Delete removes a brand permanently.
func (h *BrandAdminHandler) Delete(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Brands.Delete(c.Request().Context(), id); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete brand failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
