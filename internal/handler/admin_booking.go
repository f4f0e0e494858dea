package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/queue"
    "github.com/luxedrive/rental-api/internal/repository"
)

// BookingAdminHandler serves the staff booking queue: listing requests and
// deciding them.
type BookingAdminHandler struct {
    Bookings *repository.BookingRepo
    Cars     *repository.CarRepo
    Log      *zap.SugaredLogger
}

func NewBookingAdminHandler(b *repository.BookingRepo, cars *repository.CarRepo, log *zap.SugaredLogger) *BookingAdminHandler {
    return &BookingAdminHandler{Bookings: b, Cars: cars, Log: log}
}

type decideReq struct {
    Status string `json:"status" validate:"required"`
}

// List returns every booking, newest first.  ?status=Pending narrows to a
// single status.
func (h *BookingAdminHandler) List(c echo.Context) error {
    status := c.QueryParam("status")
    switch status {
    case "", model.BookingPending, model.BookingAccepted, model.BookingRejected:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }
    bookings, err := h.Bookings.ListAll(c.Request().Context(), status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// Decide moves a Pending booking to Accepted or Rejected.  A booking is
// decided at most once; a second decision answers 409 regardless of which
// status it asked for.
func (h *BookingAdminHandler) Decide(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req decideReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if !model.ValidBookingTransition(model.BookingPending, req.Status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be Accepted or Rejected"})
    }

    if err := h.Bookings.Decide(c.Request().Context(), id, req.Status); err != nil {
        switch err {
        case repository.ErrBookingNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "booking already decided"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "decide booking failed"})
    }

    b, err := h.Bookings.GetByID(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
    }

    evType := queue.EventBookingAccepted
    if b.Status == model.BookingRejected {
        evType = queue.EventBookingRejected
    }
    title := ""
    if car, err := h.Cars.GetByID(c.Request().Context(), b.CarID); err == nil {
        title = car.Title
    }
    ev := queue.BookingEvent{
        Type:       evType,
        BookingID:  b.ID,
        Reference:  b.Reference,
        UserID:     b.UserID,
        CarID:      b.CarID,
        CarTitle:   title,
        DateFrom:   b.DateFrom.Format("2006-01-02"),
        DateTo:     b.DateTo.Format("2006-01-02"),
        TotalDays:  b.TotalDays,
        TotalCents: b.TotalCents,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    if err := queue.PublishBookingEvent(c.Request().Context(), ev); err != nil {
        h.Log.Warnw("booking event publish failed", "booking_id", b.ID, "err", err)
    }

    return c.JSON(http.StatusOK, b)
}
