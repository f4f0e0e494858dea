package model

import "time"

// Favorite links a user to a car they have starred.  The (UserID, CarID)
// pair is unique; toggling an existing pair removes it.
type Favorite struct {
    UserID    uint64    `json:"user_id"`
    CarID     uint64    `json:"car_id"`
    CreatedAt time.Time `json:"created_at"`
}
