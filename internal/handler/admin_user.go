package handler

// Admin user management.  Listing is open to every staff role with view
// rights; creating accounts and changing roles is restricted to roles with
// role-management rights via the route wiring.

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/config"
    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

type UserAdminHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

func NewUserAdminHandler(cfg config.Config, u *repository.UserRepo) *UserAdminHandler {
    return &UserAdminHandler{Cfg: cfg, Users: u}
}

// userView is the admin-facing user shape; password hashes never leave the
// repository layer through this handler.
type userView struct {
    ID        uint64    `json:"id"`
    Name      string    `json:"name"`
    Phone     string    `json:"phone"`
    Email     string    `json:"email"`
    Role      string    `json:"role"`
    IsActive  bool      `json:"is_active"`
    CreatedAt time.Time `json:"created_at"`
}

func toUserView(u model.User) userView {
    return userView{ID: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email,
        Role: u.Role, IsActive: u.IsActive, CreatedAt: u.CreatedAt}
}

type createUserReq struct {
    Name     string `json:"name" validate:"required,min=2"`
    Phone    string `json:"phone" validate:"required,e164"`
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required,min=8"`
    Role     string `json:"role" validate:"required"`
}

type updateRoleReq struct {
    Role string `json:"role" validate:"required"`
}

// List returns every account.
func (h *UserAdminHandler) List(c echo.Context) error {
    users, err := h.Users.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]userView, 0, len(users))
    for _, u := range users {
        out = append(out, toUserView(u))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Create adds an account with an explicit role.  This is the only path
// that can mint staff accounts; self-registration is always client.
func (h *UserAdminHandler) Create(c echo.Context) error {
    var req createUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Phone = strings.TrimSpace(req.Phone)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Role = strings.TrimSpace(req.Role)
    if err := c.Validate(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, valid phone, email, password (min 8) and role required"})
    }
    if !model.KnownRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Name, req.Phone, req.Email, req.Password, req.Role, h.Cfg.BcryptCost)
    if err != nil {
        switch err {
        case repository.ErrEmailExists:
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        case repository.ErrPhoneExists:
            return c.JSON(http.StatusConflict, echo.Map{"error": "phone already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }
    u, err := h.Users.GetByID(ctx, uid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
    }
    return c.JSON(http.StatusCreated, toUserView(u))
}

// UpdateRole changes an account's role.  An admin cannot demote their own
// account; that guards against locking every admin out.
func (h *UserAdminHandler) UpdateRole(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req updateRoleReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Role = strings.TrimSpace(req.Role)
    if !model.KnownRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
    }
    if self, err := getUserID(c); err == nil && self == id && req.Role != model.RoleAdmin {
        return c.JSON(http.StatusConflict, echo.Map{"error": "cannot demote your own account"})
    }

    if err := h.Users.UpdateRole(c.Request().Context(), id, req.Role); err != nil {
        if err == repository.ErrUserNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update role failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"id": id, "role": req.Role})
}
