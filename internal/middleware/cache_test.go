package middleware

import (
    "bytes"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/luxedrive/rental-api/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
    hdr := http.Header{"Content-Type": {"application/json"}, "X-Thing": {"a", "b"}}
    body := []byte(`{"items":[]}`)

    payload, err := encodePayload(http.StatusOK, hdr, body)
    if err != nil {
        t.Fatalf("encodePayload: %v", err)
    }
    status, gotHdr, gotBody, ok := decodePayload(payload)
    if !ok {
        t.Fatal("decodePayload reported failure")
    }
    if status != http.StatusOK {
        t.Errorf("status = %d, want 200", status)
    }
    if got := gotHdr.Get("Content-Type"); got != "application/json" {
        t.Errorf("Content-Type = %q", got)
    }
    if len(gotHdr["X-Thing"]) != 2 {
        t.Errorf("X-Thing values = %v, want 2 entries", gotHdr["X-Thing"])
    }
    if !bytes.Equal(gotBody, body) {
        t.Errorf("body = %q, want %q", gotBody, body)
    }
}

func TestDecodePayloadMalformed(t *testing.T) {
    for _, bs := range [][]byte{nil, {1, 2, 3}, make([]byte, 8)} {
        if _, _, _, ok := decodePayload(bs); ok && len(bs) < 8 {
            t.Errorf("decodePayload(%v) ok = true, want false", bs)
        }
    }
    // Header length pointing past the buffer must be rejected.
    bad := make([]byte, 8)
    bad[7] = 0xFF
    if _, _, _, ok := decodePayload(bad); ok {
        t.Error("oversized header length accepted")
    }
}

func TestCacheKeyStable(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "storefront", KeyStrategy: "route_query"}
    e := echo.New()

    ctxFor := func(target string) echo.Context {
        req := httptest.NewRequest(http.MethodGet, target, nil)
        c := e.NewContext(req, httptest.NewRecorder())
        c.SetPath("/v1/cars")
        return c
    }

    a := cacheKeyFrom(cfg, ctxFor("/v1/cars?page=2"))
    b := cacheKeyFrom(cfg, ctxFor("/v1/cars?page=2"))
    other := cacheKeyFrom(cfg, ctxFor("/v1/cars?page=3"))

    if a != b {
        t.Errorf("same request hashed differently: %q vs %q", a, b)
    }
    if a == other {
        t.Error("different queries share a cache key")
    }
}
