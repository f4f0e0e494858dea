package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

// FavoriteHandler serves the client's starred-cars list.
type FavoriteHandler struct {
    Favorites *repository.FavoriteRepo
    Cars      *repository.CarRepo
}

func NewFavoriteHandler(f *repository.FavoriteRepo, cars *repository.CarRepo) *FavoriteHandler {
    return &FavoriteHandler{Favorites: f, Cars: cars}
}

// List returns the client's favorite cars as full catalog entries, in the
// order they were starred.  Favorites pointing at since-deleted cars are
// silently dropped.
func (h *FavoriteHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ids, err := h.Favorites.ListCarIDs(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    cars, err := h.Cars.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    byID := make(map[uint64]model.Car, len(cars))
    for _, car := range cars {
        byID[car.ID] = car
    }
    out := []model.Car{}
    for _, id := range ids {
        if car, ok := byID[id]; ok {
            out = append(out, car)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Toggle flips the favorite state of a car and reports the new state.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    carID, err := parseID(c, "car_id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid car id"})
    }
    if _, err := h.Cars.GetByID(c.Request().Context(), carID); err != nil {
        if err == repository.ErrCarNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    favored, err := h.Favorites.Toggle(c.Request().Context(), userID, carID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle favorite failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"car_id": carID, "favorite": favored})
}
