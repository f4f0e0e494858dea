package handler

import (
    "database/sql"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    _ "github.com/go-sql-driver/mysql"
    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

func newPatchContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    e.Validator = NewValidator()
    req := httptest.NewRequest(http.MethodPatch, "/v1/admin/brands/3", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetParamNames("id")
    c.SetParamValues("3")
    return c, rec
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBrandPatchMergePreservesOmittedFields(t *testing.T) {
    hidden := model.Brand{ID: 3, Name: "Bentley", Logo: "bentley.svg", Description: "GT cars", IsActive: false}

    // A patch that only renames must not resurface a hidden brand or wipe
    // the logo and description.
    b := hidden
    if touched := (brandPatchReq{Name: strPtr("Bentley Motors")}).merge(&b); !touched {
        t.Fatal("merge reported no fields for a name-only patch")
    }
    if b.IsActive {
        t.Error("name-only patch re-activated a hidden brand")
    }
    if b.Logo != "bentley.svg" || b.Description != "GT cars" {
        t.Errorf("name-only patch clobbered logo/description: %+v", b)
    }
    if b.Name != "Bentley Motors" {
        t.Errorf("name = %q, want updated", b.Name)
    }

    // A visibility-only patch must leave every other field alone.
    b = hidden
    (brandPatchReq{IsActive: boolPtr(true)}).merge(&b)
    if !b.IsActive || b.Name != "Bentley" || b.Logo != "bentley.svg" {
        t.Errorf("visibility-only patch changed more than is_active: %+v", b)
    }

    if touched := (brandPatchReq{}).merge(&b); touched {
        t.Error("empty patch reported touched fields")
    }
}

func TestBrandPatchValidation(t *testing.T) {
    h := NewBrandAdminHandler(nil)

    c, rec := newPatchContext(t, `{}`)
    if err := h.Patch(c); err != nil {
        t.Fatalf("Patch: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Errorf("empty patch status = %d, want 400", rec.Code)
    }

    c, rec = newPatchContext(t, `{"name":"   "}`)
    if err := h.Patch(c); err != nil {
        t.Fatalf("Patch: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Errorf("blank name status = %d, want 400", rec.Code)
    }
}

func TestBrandPatchPartialBodyPassesValidation(t *testing.T) {
    // An unreachable database makes the storage call fail, which proves a
    // visibility-only body gets past validation instead of bouncing 400.
    db, err := sql.Open("mysql", "u@tcp(127.0.0.1:1)/none")
    if err != nil {
        t.Fatalf("sql.Open: %v", err)
    }
    defer db.Close()
    h := NewBrandAdminHandler(repository.NewBrandRepo(db))

    c, rec := newPatchContext(t, `{"is_active":false}`)
    if err := h.Patch(c); err != nil {
        t.Fatalf("Patch: %v", err)
    }
    if rec.Code == http.StatusBadRequest {
        t.Fatalf("visibility-only patch rejected as invalid: %s", rec.Body.String())
    }
    if rec.Code != http.StatusInternalServerError {
        t.Errorf("status = %d, want 500 from the dead database", rec.Code)
    }
}
