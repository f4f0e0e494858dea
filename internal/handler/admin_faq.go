package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

// FAQAdminHandler serves the admin CRUD for site-wide FAQ entries.
type FAQAdminHandler struct {
    FAQs *repository.FAQRepo
}

func NewFAQAdminHandler(r *repository.FAQRepo) *FAQAdminHandler {
    return &FAQAdminHandler{FAQs: r}
}

type faqReq struct {
    Question  string `json:"question" validate:"required"`
    Answer    string `json:"answer" validate:"required"`
    IsVisible *bool  `json:"is_visible"`
}

type faqVisibilityReq struct {
    IsVisible *bool `json:"is_visible" validate:"required"`
}

// List returns every FAQ, hidden ones included, in display order.
func (h *FAQAdminHandler) List(c echo.Context) error {
    faqs, err := h.FAQs.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": faqs})
}

// Create appends an FAQ at the end of the ordering.  New entries default
// to visible unless is_visible is explicitly false.
func (h *FAQAdminHandler) Create(c echo.Context) error {
    var req faqReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Question = strings.TrimSpace(req.Question)
    req.Answer = strings.TrimSpace(req.Answer)
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "question and answer are required"})
    }
    visible := true
    if req.IsVisible != nil {
        visible = *req.IsVisible
    }
    f := model.FAQ{Question: req.Question, Answer: req.Answer, IsVisible: visible}
    if err := h.FAQs.Create(c.Request().Context(), &f); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create faq failed"})
    }
    return c.JSON(http.StatusCreated, f)
}

// Update replaces question, answer and visibility of an entry.
func (h *FAQAdminHandler) Update(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req faqReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Question = strings.TrimSpace(req.Question)
    req.Answer = strings.TrimSpace(req.Answer)
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "question and answer are required"})
    }
    visible := true
    if req.IsVisible != nil {
        visible = *req.IsVisible
    }
    if err := h.FAQs.Update(c.Request().Context(), id, req.Question, req.Answer, visible); err != nil {
        if err == repository.ErrFAQNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "faq not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update faq failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"id": id, "question": req.Question, "answer": req.Answer, "is_visible": visible})
}

// SetVisibility flips whether an entry shows on the public FAQ list.
func (h *FAQAdminHandler) SetVisibility(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req faqVisibilityReq
    if err := c.Bind(&req); err != nil || req.IsVisible == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_visible is required"})
    }
    if err := h.FAQs.SetVisibility(c.Request().Context(), id, *req.IsVisible); err != nil {
        if err == repository.ErrFAQNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "faq not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update faq failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"id": id, "is_visible": *req.IsVisible})
}

// Delete removes an FAQ entry.
func (h *FAQAdminHandler) Delete(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.FAQs.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrFAQNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "faq not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete faq failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
