// Package repository contains the data access contracts consumed by the HTTP layer.
// Implementations live in subpackages (postgres, memory) inside this directory.
//
// Lookups by id never report absence as an error: GetByID, Update and Delete
// return a nil entity and a nil error when no row matches, leaving the caller
// to decide how to answer. Errors are reserved for store failures and
// constraint violations.
package repository

import (
	"context"

	"github.com/google/uuid"

	"nzwalks/internal/model"
)

// Repository is the capability set shared by every entity repository.
type Repository[T any] interface {
	// GetByID returns the entity, or nil when no row has that id.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Create assigns a fresh id, persists the entity and returns the stored row.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update overwrites the mutable fields of the row with the given id and
	// returns the updated row, or nil when no row has that id.
	Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error)

	// Delete removes the row with the given id and returns it as it was before
	// deletion, or nil when no row has that id.
	Delete(ctx context.Context, id uuid.UUID) (*T, error)
}

// RegionRepository is the data access contract for regions.
type RegionRepository interface {
	Repository[model.Region]

	// GetAll returns every region in store order.
	GetAll(ctx context.Context) ([]model.Region, error)
}

// TrailRepository is the data access contract for walks.
type TrailRepository interface {
	Repository[model.Trail]

	// GetAll returns walks filtered, sorted and paged according to q.
	GetAll(ctx context.Context, q TrailQuery) ([]model.Trail, error)
}

// ImageRepository persists uploaded image metadata.
type ImageRepository interface {
	Create(ctx context.Context, img *model.Image) (*model.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error)
}
