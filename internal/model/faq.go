package model

import "time"

// FAQ is a site-wide question/answer entry.  The public site only shows
// entries whose IsVisible flag is set, in position order.
type FAQ struct {
    ID        uint64    `json:"id"`
    Question  string    `json:"question"`
    Answer    string    `json:"answer"`
    IsVisible bool      `json:"is_visible"`
    Position  int       `json:"position"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// VisibleFAQs filters to entries with IsVisible set, preserving order.
func VisibleFAQs(faqs []FAQ) []FAQ {
    out := make([]FAQ, 0, len(faqs))
    for _, f := range faqs {
        if f.IsVisible {
            out = append(out, f)
        }
    }
    return out
}
