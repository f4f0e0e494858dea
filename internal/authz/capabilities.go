// Package authz derives UI/API capabilities from a user's role and resolves
// session state from tokens.  Role is the sole authorization axis; every
// capability is a deterministic function of the role string so the whole
// authorization surface stays auditable in one place.
package authz

import "github.com/luxedrive/rental-api/internal/model"

// Capabilities is the record of booleans gating admin actions.  An unknown
// or absent role yields the zero value (everything false).
type Capabilities struct {
    IsAdmin        bool `json:"is_admin"`
    IsManager      bool `json:"is_manager"`
    IsAgent        bool `json:"is_agent"`
    CanCreate      bool `json:"can_create"`
    CanEdit        bool `json:"can_edit"`
    CanDelete      bool `json:"can_delete"`
    CanView        bool `json:"can_view"`
    CanAccessHome  bool `json:"can_access_home"`
    CanAccessRoles bool `json:"can_access_roles"`
}

// For maps a role string to its capability record.  The mapping is kept as
// a single derivation rather than conditionals scattered across handlers.
func For(role string) Capabilities {
    isAdmin := role == model.RoleAdmin
    isManager := role == model.RoleManager
    isAgent := role == model.RoleAgent
    manage := isAdmin || isManager
    return Capabilities{
        IsAdmin:        isAdmin,
        IsManager:      isManager,
        IsAgent:        isAgent,
        CanCreate:      manage,
        CanEdit:        manage,
        CanDelete:      manage,
        CanView:        manage || isAgent,
        CanAccessHome:  manage,
        CanAccessRoles: manage,
    }
}
