package models

import (
	"time"

	"github.com/google/uuid"
)

// Responder is the subset of personnel eligible for dispatch.
type Responder struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	BadgeNo  string    `json:"badge_no"`
	IsActive bool      `json:"is_active"`
}

// ResponderLocationFix is the most recent GPS fix for a responder.
// Only the latest fix per responder is kept; older fixes are dropped.
type ResponderLocationFix struct {
	ResponderID uuid.UUID `json:"responder_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResponderMatch is the result of a nearest-responder lookup.
type ResponderMatch struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BadgeNo   string    `json:"badge_no"`
	DistanceM float64   `json:"distance_m"`
	FixAt     time.Time `json:"fix_at"`
}

type Camera struct {
	ID           uuid.UUID `json:"id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name"`
}
