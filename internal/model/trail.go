package model

import "github.com/google/uuid"

// Trail is a walk located in a region. Difficulty and Region are populated on
// read paths from the two foreign keys; writes only look at the ids.
type Trail struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	LengthInKm   float64    `json:"lengthInKm"`
	WalkImageURL *string    `json:"walkImageUrl,omitempty"`
	DifficultyID uuid.UUID  `json:"difficultyId"`
	RegionID     uuid.UUID  `json:"regionId"`
	Difficulty   Difficulty `json:"difficulty"`
	Region       Region     `json:"region"`
}
