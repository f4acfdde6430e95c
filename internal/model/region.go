package model

import "github.com/google/uuid"

// Region is a geographic area that contains walks.
type Region struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageURL *string   `json:"regionImageUrl,omitempty"`
}
