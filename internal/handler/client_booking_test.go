package handler

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
)

func newBookingContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    e.Validator = NewValidator()
    req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.Set("user_id", uint64(7))
    return c, rec
}

func TestBookingCreateRejectsOverlongRental(t *testing.T) {
    h := NewBookingHandler(nil, nil, nil)

    // 367 inclusive days, one past the cap.  The range is rejected before
    // any repository access, which is why nil repositories suffice.
    c, rec := newBookingContext(t, `{"car_id":1,"date_from":"2026-01-01","date_to":"2027-01-02"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Errorf("367-day rental status = %d, want 400", rec.Code)
    }
    if !strings.Contains(rec.Body.String(), "exceeds") {
        t.Errorf("unexpected error body: %s", rec.Body.String())
    }
}

func TestBookingCreateRejectsInvertedRange(t *testing.T) {
    h := NewBookingHandler(nil, nil, nil)

    c, rec := newBookingContext(t, `{"car_id":1,"date_from":"2026-06-10","date_to":"2026-06-01"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Errorf("inverted range status = %d, want 400", rec.Code)
    }
}
