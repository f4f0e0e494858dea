package authz

import (
    "encoding/base64"
    "encoding/json"
    "testing"
    "time"
)

// encodeToken builds the expected header.payload.signature structure around
// the given claims.  Header and signature content are irrelevant to the
// unverified decoder.
func encodeToken(t *testing.T, claims map[string]any) string {
    t.Helper()
    header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
    payload, err := json.Marshal(claims)
    if err != nil {
        t.Fatalf("marshal claims: %v", err)
    }
    return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestDecodeUnverifiedRoundTrip(t *testing.T) {
    tok := encodeToken(t, map[string]any{"role": "admin", "exp": float64(1900000000)})
    claims, ok := DecodeUnverified(tok)
    if !ok {
        t.Fatal("expected decode to succeed")
    }
    if claims.Role() != "admin" {
        t.Errorf("role = %q, want admin", claims.Role())
    }
    if claims.Exp() != 1900000000 {
        t.Errorf("exp = %d, want 1900000000", claims.Exp())
    }
}

func TestDecodeUnverifiedMalformed(t *testing.T) {
    cases := map[string]string{
        "no dots":          "abcdef",
        "one dot":          "abc.def",
        "four segments":    "a.b.c.d",
        "bad base64":       "h.!!!not-base64!!!.s",
        "non-JSON payload": "h." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".s",
        "empty":            "",
    }
    for name, tok := range cases {
        if claims, ok := DecodeUnverified(tok); ok {
            t.Errorf("%s: expected failure, got claims %v", name, claims)
        }
    }
}

func TestResolveSessionExpiry(t *testing.T) {
    now := time.Unix(1_800_000_000, 0)

    past := encodeToken(t, map[string]any{"role": "admin", "exp": float64(now.Unix() - 60)})
    if s := ResolveSession(past, now); s.State != Unauthenticated {
        t.Errorf("past exp: state = %v, want Unauthenticated", s.State)
    }

    future := encodeToken(t, map[string]any{"role": "manager", "exp": float64(now.Unix() + 3600)})
    s := ResolveSession(future, now)
    if s.State != Authenticated {
        t.Fatalf("future exp: state = %v, want Authenticated", s.State)
    }
    if s.Claims.Role() != "manager" {
        t.Errorf("claims role = %q, want manager", s.Claims.Role())
    }
}

func TestResolveSessionNoToken(t *testing.T) {
    if s := ResolveSession("", time.Now()); s.State != Unauthenticated {
        t.Errorf("empty token: state = %v, want Unauthenticated", s.State)
    }
    if s := ResolveSession("garbage", time.Now()); s.State != Unauthenticated {
        t.Errorf("garbage token: state = %v, want Unauthenticated", s.State)
    }
}
