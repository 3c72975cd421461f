package domain

import "time"

// Station is immutable reference data: a physical pickup/drop-off location
// with a fixed umbrella capacity. Stations are created by admins and are
// never owned by a borrow.
type Station struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Address    string    `json:"address"`
	TotalSlots int32     `json:"totalSlots"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedOn  time.Time `json:"createdOn"`
	UpdatedOn  time.Time `json:"updatedOn"`
}
