package authz

import (
    "encoding/base64"
    "encoding/json"
    "strings"
    "time"
)

// Claims is the decoded payload of a JWT.  Arbitrary keys are preserved;
// Role and Exp are pulled out because session resolution depends on them.
type Claims map[string]any

// Role returns the "role" claim, or "" when absent or not a string.
func (c Claims) Role() string {
    s, _ := c["role"].(string)
    return s
}

// Exp returns the "exp" claim in Unix seconds, or 0 when absent.  JSON
// numbers decode as float64.
func (c Claims) Exp() int64 {
    if f, ok := c["exp"].(float64); ok {
        return int64(f)
    }
    return 0
}

// DecodeUnverified parses the payload segment of a JWT without checking the
// signature.  It splits on ".", base64url-decodes the middle segment and
// unmarshals it as JSON.  Any malformed input (wrong segment count, invalid
// base64, invalid JSON) yields (nil, false) rather than an error or panic.
//
// This is NOT a security boundary.  Verified parsing lives in the JWT
// middleware; this decoder exists only for the non-authoritative session
// introspection endpoint.
func DecodeUnverified(token string) (Claims, bool) {
    parts := strings.Split(token, ".")
    if len(parts) != 3 {
        return nil, false
    }
    payload, err := base64.RawURLEncoding.DecodeString(parts[1])
    if err != nil {
        // Tolerate padded tokens produced by non-raw encoders.
        payload, err = base64.URLEncoding.DecodeString(parts[1])
        if err != nil {
            return nil, false
        }
    }
    var claims Claims
    if err := json.Unmarshal(payload, &claims); err != nil {
        return nil, false
    }
    return claims, true
}

// SessionState describes the outcome of resolving a token.
type SessionState int

const (
    // Unresolved is the initial state before any token has been examined.
    Unresolved SessionState = iota
    // Authenticated means a decodable, unexpired token was found.
    Authenticated
    // Unauthenticated means no token, a malformed token, or an expired one.
    Unauthenticated
)

// Session is the result of ResolveSession.  Claims is non-nil only when
// State is Authenticated.
type Session struct {
    State  SessionState
    Claims Claims
}

// ResolveSession derives a session from a raw token string at the given
// instant.  Empty token → Unauthenticated.  Undecodable token →
// Unauthenticated.  Decoded token whose exp (seconds) is strictly in the
// past → Unauthenticated.  Otherwise Authenticated with the decoded claims.
// A token without an exp claim never expires here; the verified middleware
// is the authoritative check.
func ResolveSession(token string, now time.Time) Session {
    if strings.TrimSpace(token) == "" {
        return Session{State: Unauthenticated}
    }
    claims, ok := DecodeUnverified(token)
    if !ok {
        return Session{State: Unauthenticated}
    }
    if exp := claims.Exp(); exp != 0 && exp < now.Unix() {
        return Session{State: Unauthenticated}
    }
    return Session{State: Authenticated, Claims: claims}
}
