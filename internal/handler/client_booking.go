package handler

import (
    "math"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/queue"
    "github.com/luxedrive/rental-api/internal/repository"
)

// BookingHandler serves the client booking flow: placing a request and
// listing one's own bookings.
type BookingHandler struct {
    Bookings *repository.BookingRepo
    Cars     *repository.CarRepo
    Log      *zap.SugaredLogger
}

func NewBookingHandler(b *repository.BookingRepo, cars *repository.CarRepo, log *zap.SugaredLogger) *BookingHandler {
    return &BookingHandler{Bookings: b, Cars: cars, Log: log}
}

// maxRentalDays bounds a single booking.  Anything longer is a data-entry
// mistake, and the cap keeps the cents arithmetic far away from overflow.
const maxRentalDays = 366

type bookingReq struct {
    CarID    uint64 `json:"car_id" validate:"required"`
    DateFrom string `json:"date_from" validate:"required"`
    DateTo   string `json:"date_to" validate:"required"`
}

// Create places a Pending booking for the authenticated client.  The day
// count and total price are computed here from the car's daily rate; the
// client never submits a price.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req bookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "car_id, date_from and date_to are required"})
    }
    from, err := time.Parse("2006-01-02", req.DateFrom)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_from must be YYYY-MM-DD"})
    }
    to, err := time.Parse("2006-01-02", req.DateTo)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_to must be YYYY-MM-DD"})
    }
    days := model.RentalDays(from, to)
    if days == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_to must not precede date_from"})
    }
    if days > maxRentalDays {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rental period exceeds one year"})
    }

    car, err := h.Cars.GetByID(c.Request().Context(), req.CarID)
    if err != nil {
        if err == repository.ErrCarNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if car.State != model.CarAvailable {
        return c.JSON(http.StatusConflict, echo.Map{"error": "car is not available"})
    }

    // Total in 64-bit first; days is capped but the daily rate is not.
    total := uint64(days) * uint64(car.Pricing.DailyCents)
    if total > math.MaxUint32 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rental total exceeds the supported amount"})
    }

    b := model.Booking{
        Reference:  uuid.NewString(),
        UserID:     userID,
        CarID:      car.ID,
        DateFrom:   from,
        DateTo:     to,
        TotalDays:  days,
        TotalCents: uint32(total),
    }
    if err := h.Bookings.Create(c.Request().Context(), &b); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
    }

    ev := queue.BookingEvent{
        Type:       queue.EventBookingCreated,
        BookingID:  b.ID,
        Reference:  b.Reference,
        UserID:     b.UserID,
        CarID:      b.CarID,
        CarTitle:   car.Title,
        DateFrom:   req.DateFrom,
        DateTo:     req.DateTo,
        TotalDays:  b.TotalDays,
        TotalCents: b.TotalCents,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    if err := queue.PublishBookingEvent(c.Request().Context(), ev); err != nil {
        h.Log.Warnw("booking event publish failed", "booking_id", b.ID, "err", err)
    }

    return c.JSON(http.StatusCreated, b)
}

// ListMine returns the authenticated client's bookings, newest first.
func (h *BookingHandler) ListMine(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bookings, err := h.Bookings.ListByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}
