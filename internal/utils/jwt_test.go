package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
    at, err := NewAccessToken("test-secret", 42, "manager", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("test-secret"), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("signed token did not verify: %v", err)
    }
    claims := tok.Claims.(jwt.MapClaims)
    if claims["role"] != "manager" {
        t.Errorf("role claim = %v, want manager", claims["role"])
    }
    if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
        t.Errorf("sub claim = %v, want 42", claims["sub"])
    }
    if time.Until(at.Exp) > 15*time.Minute || time.Until(at.Exp) < 14*time.Minute {
        t.Errorf("expiry %v not ~15m out", at.Exp)
    }
}

func TestRefreshTokenHashing(t *testing.T) {
    rt, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(rt.Raw) != 96 {
        t.Errorf("raw length = %d, want 96 hex chars", len(rt.Raw))
    }
    h1 := HashRefreshRaw(rt.Raw)
    h2 := HashRefreshRaw(rt.Raw)
    if h1 != h2 {
        t.Error("hash not deterministic")
    }
    if len(h1) != 64 {
        t.Errorf("hash length = %d, want 64", len(h1))
    }
    if h1 == HashRefreshRaw(rt.Raw+"x") {
        t.Error("distinct inputs hashed equal")
    }
}

func TestVerifyPassword(t *testing.T) {
    hash, err := HashPassword("hunter2", 4)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if !VerifyPassword(hash, "hunter2") {
        t.Error("correct password rejected")
    }
    if VerifyPassword(hash, "hunter3") {
        t.Error("wrong password accepted")
    }
}
