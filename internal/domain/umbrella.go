package domain

import "time"

type UmbrellaStatus string

const (
	UmbrellaStatusAvailable   UmbrellaStatus = "available"
	UmbrellaStatusBorrowed    UmbrellaStatus = "borrowed"
	UmbrellaStatusMaintenance UmbrellaStatus = "maintenance"
)

type UmbrellaSize string

const (
	UmbrellaSizeSmall  UmbrellaSize = "small"
	UmbrellaSizeMedium UmbrellaSize = "medium"
	UmbrellaSizeLarge  UmbrellaSize = "large"
)

// Umbrella is a trackable physical unit. It sits at exactly one station at a
// time; while borrowed, StationID stays frozen at the borrow-origin station
// until the return reassigns it.
type Umbrella struct {
	ID         string         `json:"id"`
	UmbrellaID string         `json:"umbrellaId"` // human-readable tag, e.g. UMB-001
	StationID  string         `json:"stationId"`
	Station    *Station       `json:"station,omitempty"` // populated on detail queries
	Status     UmbrellaStatus `json:"status"`
	Color      string         `json:"color"`
	Size       UmbrellaSize   `json:"size"`
	IsActive   bool           `json:"isActive"`
	CreatedOn  time.Time      `json:"createdOn"`
	UpdatedOn  time.Time      `json:"updatedOn"`
}
