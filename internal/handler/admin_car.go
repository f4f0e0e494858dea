package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

// CarAdminHandler serves the admin car CRUD.  Admins and managers can
// create, edit and delete; the route wiring enforces that.
type CarAdminHandler struct {
    Cars *repository.CarRepo
}

func NewCarAdminHandler(r *repository.CarRepo) *CarAdminHandler {
    return &CarAdminHandler{Cars: r}
}

// carReq carries the full car document.  Create and update take the same
// shape: an update replaces the whole car including its child lists.
type carReq struct {
    Brand              string           `json:"brand" validate:"required"`
    Model              string           `json:"model" validate:"required"`
    Title              string           `json:"title" validate:"required"`
    MainImage          string           `json:"main_image"`
    Logo               string           `json:"logo"`
    Year               uint16           `json:"year" validate:"required,gte=1950"`
    Transmission       string           `json:"transmission"`
    TopSpeed           uint16           `json:"top_speed"`
    Seats              uint8            `json:"seats"`
    Drive              string           `json:"drive"`
    FuelType           string           `json:"fuel_type"`
    State              string           `json:"state"`
    Pricing            model.Pricing    `json:"pricing"`
    Mileage            model.Mileage    `json:"mileage"`
    Description        string           `json:"description"`
    GalleryImages      []string         `json:"gallery_images"`
    GalleryVideos      []string         `json:"gallery_videos"`
    Categories         []string         `json:"categories"`
    Specs              []model.SpecItem `json:"specs"`
    Features           []string         `json:"features"`
    RentalRequirements []string         `json:"rental_requirements"`
    FAQs               []model.CarFAQ   `json:"faqs"`
}

func (req *carReq) toModel() model.Car {
    state := req.State
    if state != model.CarAvailable && state != model.CarNotAvailable {
        state = model.CarAvailable
    }
    return model.Car{
        Brand:              strings.TrimSpace(req.Brand),
        Model:              strings.TrimSpace(req.Model),
        Title:              strings.TrimSpace(req.Title),
        MainImage:          req.MainImage,
        Logo:               req.Logo,
        Year:               req.Year,
        Transmission:       req.Transmission,
        TopSpeed:           req.TopSpeed,
        Seats:              req.Seats,
        Drive:              req.Drive,
        FuelType:           req.FuelType,
        State:              state,
        Pricing:            req.Pricing,
        Mileage:            req.Mileage,
        Description:        req.Description,
        GalleryImages:      req.GalleryImages,
        GalleryVideos:      req.GalleryVideos,
        Categories:         req.Categories,
        Specs:              req.Specs,
        Features:           req.Features,
        RentalRequirements: req.RentalRequirements,
        FAQs:               req.FAQs,
    }
}

// List returns the full catalog for the admin panel.
func (h *CarAdminHandler) List(c echo.Context) error {
    cars, err := h.Cars.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": cars})
}

// Create adds a car with all of its detail sections.
func (h *CarAdminHandler) Create(c echo.Context) error {
    var req carReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model, title and a plausible year are required"})
    }
    car := req.toModel()
    if err := h.Cars.Create(c.Request().Context(), &car); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create car failed"})
    }
    return c.JSON(http.StatusCreated, car)
}

// Update replaces a car document in full, child lists included.
func (h *CarAdminHandler) Update(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req carReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model, title and a plausible year are required"})
    }
    car := req.toModel()
    car.ID = id
    if err := h.Cars.Update(c.Request().Context(), &car); err != nil {
        if err == repository.ErrCarNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update car failed"})
    }
    full, err := h.Cars.GetByID(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load car failed"})
    }
    return c.JSON(http.StatusOK, full)
}

// Delete removes a car.  Cars with undecided bookings cannot be deleted;
// the booking has to be decided first.
func (h *CarAdminHandler) Delete(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    switch err := h.Cars.Delete(c.Request().Context(), id); err {
    case nil:
        return c.NoContent(http.StatusNoContent)
    case repository.ErrCarNotFound:
        return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
    case repository.ErrConflict:
        return c.JSON(http.StatusConflict, echo.Map{"error": "car has pending bookings"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete car failed"})
    }
}
