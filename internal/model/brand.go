package model

import "time"

// Brand represents a car manufacturer shown on the storefront.  Brands are
// managed by admins; the public site only ever sees brands whose IsActive
// flag is set.  An admin write goes live immediately: there is no draft or
// staging concept.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – manufacturer name.
//  Logo        – logo image URL.
//  Description – short marketing blurb.
//  IsActive    – public visibility flag.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update.
type Brand struct {
    ID          uint64    `json:"id"`
    Name        string    `json:"name"`
    Logo        string    `json:"logo"`
    Description string    `json:"description"`
    IsActive    bool      `json:"is_active"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

// VisibleBrands returns exactly the subset of brands with IsActive set,
// preserving the original relative order.
func VisibleBrands(brands []Brand) []Brand {
    out := make([]Brand, 0, len(brands))
    for _, b := range brands {
        if b.IsActive {
            out = append(out, b)
        }
    }
    return out
}

// DefaultBrands is the built-in brand list served when the database cannot
// be reached, so the public site stays usable during an outage.
func DefaultBrands() []Brand {
    return []Brand{
        {ID: 1, Name: "Ferrari", Logo: "/static/brands/ferrari.png", Description: "Italian thoroughbreds since 1947.", IsActive: true},
        {ID: 2, Name: "Lamborghini", Logo: "/static/brands/lamborghini.png", Description: "Raging bulls from Sant'Agata.", IsActive: true},
        {ID: 3, Name: "Rolls-Royce", Logo: "/static/brands/rolls-royce.png", Description: "Effortless luxury, hand built.", IsActive: true},
        {ID: 4, Name: "Porsche", Logo: "/static/brands/porsche.png", Description: "Precision sports cars from Stuttgart.", IsActive: true},
        {ID: 5, Name: "Bentley", Logo: "/static/brands/bentley.png", Description: "Grand touring at its finest.", IsActive: true},
    }
}
