package model

// Singleton content documents backing the storefront home page.  Each of
// these is expected to hold exactly one logical record; updates replace the
// record in place with no versioning.

// HeroCard is the featured car card rendered over the hero background.
type HeroCard struct {
    Title string     `json:"title"`
    Logo  string     `json:"logo"`
    Image string     `json:"image"`
    Specs []SpecItem `json:"specs"`
}

// HeroContent is the hero section singleton.
type HeroContent struct {
    BackgroundImage string   `json:"background_image"`
    CarCard         HeroCard `json:"car_card"`
}

// LogoContent is the navbar branding singleton.
type LogoContent struct {
    NavbarLogo  string `json:"navbar_logo"`
    CompanyName string `json:"company_name"`
}

// Gallery photo variants.  Desktop and mobile carry independent fixed-size
// slot sets; slot counts are configuration, not structural invariants.
const (
    GalleryDesktop = "desktop"
    GalleryMobile  = "mobile"
)

// GalleryPhoto occupies one slot of the gallery singleton.  Slot indices
// are zero-based and bounded by the configured slot count per variant.
type GalleryPhoto struct {
    Variant  string `json:"-"`
    Slot     int    `json:"slot"`
    ImageURL string `json:"image_url"`
    Alt      string `json:"alt"`
}

// GalleryContent groups the photo slots by variant for API responses.
type GalleryContent struct {
    DesktopPhotos []GalleryPhoto `json:"desktop_photos"`
    MobilePhotos  []GalleryPhoto `json:"mobile_photos"`
}
