package model

import "time"

// Car availability states.  Anything other than Available is hidden from
// the booking flow but still shown in the catalog.
const (
    CarAvailable    = "Available"
    CarNotAvailable = "Not-Available"
)

// Catalog categories a car may belong to.  A car can carry several.
const (
    CategorySupercar    = "supercar"
    CategoryLuxury      = "luxury"
    CategorySports      = "sports"
    CategoryConvertible = "convertible"
)

// SpecItem is a labelled icon shown on car cards and detail pages
// (e.g. {icon: "engine", label: "V12"}).
type SpecItem struct {
    Icon  string `json:"icon"`
    Label string `json:"label"`
}

// CarFAQ is a question/answer pair attached to a specific car.
type CarFAQ struct {
    Question string `json:"question"`
    Answer   string `json:"answer"`
}

// Pricing groups the three rental rates, stored in cents.
type Pricing struct {
    DailyCents   uint32 `json:"daily_cents"`
    WeeklyCents  uint32 `json:"weekly_cents"`
    MonthlyCents uint32 `json:"monthly_cents"`
}

// Mileage describes the included mileage allowance and the per-unit
// surcharge beyond it, in cents.
type Mileage struct {
    Limit            uint32 `json:"limit"`
    AdditionalCharge uint32 `json:"additional_charge_cents"`
}

// Car is the central catalog entity.  The flat columns live in the `cars`
// table; the slice fields are loaded from child tables keyed by car_id and
// ordered by position.
type Car struct {
    ID                 uint64    `json:"id"`
    Brand              string    `json:"brand"`
    Model              string    `json:"model"`
    Title              string    `json:"title"`
    MainImage          string    `json:"main_image"`
    Logo               string    `json:"logo"`
    Year               uint16    `json:"year"`
    Transmission       string    `json:"transmission"`
    TopSpeed           uint16    `json:"top_speed"`
    Seats              uint8     `json:"seats"`
    Drive              string    `json:"drive"`
    FuelType           string    `json:"fuel_type"`
    State              string    `json:"state"`
    Pricing            Pricing   `json:"pricing"`
    Mileage            Mileage   `json:"mileage"`
    Description        string    `json:"description"`
    GalleryImages      []string  `json:"gallery_images"`
    GalleryVideos      []string  `json:"gallery_videos"`
    Categories         []string  `json:"categories"`
    Specs              []SpecItem `json:"specs"`
    Features           []string  `json:"features"`
    RentalRequirements []string  `json:"rental_requirements"`
    FAQs               []CarFAQ  `json:"faqs"`
    CreatedAt          time.Time `json:"created_at"`
    UpdatedAt          time.Time `json:"updated_at"`
}

// HasCategory reports whether the car is tagged with the given category.
func (c *Car) HasCategory(category string) bool {
    for _, cat := range c.Categories {
        if cat == category {
            return true
        }
    }
    return false
}
