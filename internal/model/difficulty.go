package model

import "github.com/google/uuid"

// Difficulty is read-only reference data seeded by the schema migration.
type Difficulty struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
