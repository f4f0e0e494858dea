package model

import "time"

// ContactInfo is the contact-details singleton.  Each field carries its own
// updated-at timestamp so the admin panel can show when a value last changed.
type ContactInfo struct {
    Phone            string    `json:"phone"`
    PhoneUpdatedAt   time.Time `json:"phone_updated_at"`
    Email            string    `json:"email"`
    EmailUpdatedAt   time.Time `json:"email_updated_at"`
    Hours            string    `json:"hours"`
    HoursUpdatedAt   time.Time `json:"hours_updated_at"`
    Address          string    `json:"address"`
    AddressUpdatedAt time.Time `json:"address_updated_at"`
}

// SocialLink is one entry of the social-media link list.  Inactive links
// are kept but not rendered publicly.
type SocialLink struct {
    ID       uint64 `json:"id"`
    Platform string `json:"platform"`
    Link     string `json:"link"`
    Active   bool   `json:"active"`
}
