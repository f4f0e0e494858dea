package model

import "time"

// Role names recognised by the storefront.  Role is the sole authorization
// axis: every capability is derived from these four strings.
const (
    RoleAdmin   = "admin"
    RoleManager = "manager"
    RoleAgent   = "agent"
    RoleClient  = "client"
)

// KnownRole reports whether s is one of the four recognised role names.
func KnownRole(s string) bool {
    switch s {
    case RoleAdmin, RoleManager, RoleAgent, RoleClient:
        return true
    }
    return false
}

// User represents an application user record as stored in the `users`
// table.  The password hash is opaque to every layer above the repository.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Phone        – phone number used for login and OTP flows.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of admin, manager, agent, client.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Phone        string    // users.phone
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its SHA‑256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA‑256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (nil if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    uint64     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
