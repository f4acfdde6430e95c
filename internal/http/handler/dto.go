package handler

import (
	"github.com/google/uuid"

	"nzwalks/internal/model"
)

// RegionDTO is the transfer representation of a region.
type RegionDTO struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageURL *string   `json:"regionImageUrl"`
}

// RegionRequest is the body of region create and update requests.
type RegionRequest struct {
	Code           string  `json:"code" validate:"required,len=3,printascii"`
	Name           string  `json:"name" validate:"required,max=100"`
	RegionImageURL *string `json:"regionImageUrl" validate:"omitempty,url"`
}

// DifficultyDTO is the transfer representation of a difficulty.
type DifficultyDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// WalkDTO is the transfer representation of a walk with its difficulty and region.
type WalkDTO struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	LengthInKm   float64       `json:"lengthInKm"`
	WalkImageURL *string       `json:"walkImageUrl"`
	Difficulty   DifficultyDTO `json:"difficulty"`
	Region       RegionDTO     `json:"region"`
}

// WalkRequest is the body of walk create and update requests.
type WalkRequest struct {
	Name         string    `json:"name" validate:"required,max=100"`
	Description  string    `json:"description" validate:"required,max=1000"`
	LengthInKm   float64   `json:"lengthInKm" validate:"gte=0,lte=50"`
	WalkImageURL *string   `json:"walkImageUrl" validate:"omitempty,url"`
	DifficultyID uuid.UUID `json:"difficultyId" validate:"required"`
	RegionID     uuid.UUID `json:"regionId" validate:"required"`
}

func toRegionDTO(r model.Region) RegionDTO {
	return RegionDTO{ID: r.ID, Code: r.Code, Name: r.Name, RegionImageURL: r.RegionImageURL}
}

func toRegionDTOs(rs []model.Region) []RegionDTO {
	out := make([]RegionDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRegionDTO(r))
	}
	return out
}

func (req RegionRequest) toModel() *model.Region {
	return &model.Region{Code: req.Code, Name: req.Name, RegionImageURL: req.RegionImageURL}
}

func toWalkDTO(t model.Trail) WalkDTO {
	return WalkDTO{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		LengthInKm:   t.LengthInKm,
		WalkImageURL: t.WalkImageURL,
		Difficulty:   DifficultyDTO{ID: t.Difficulty.ID, Name: t.Difficulty.Name},
		Region:       toRegionDTO(t.Region),
	}
}

func toWalkDTOs(ts []model.Trail) []WalkDTO {
	out := make([]WalkDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toWalkDTO(t))
	}
	return out
}

func (req WalkRequest) toModel() *model.Trail {
	return &model.Trail{
		Name:         req.Name,
		Description:  req.Description,
		LengthInKm:   req.LengthInKm,
		WalkImageURL: req.WalkImageURL,
		DifficultyID: req.DifficultyID,
		RegionID:     req.RegionID,
	}
}
