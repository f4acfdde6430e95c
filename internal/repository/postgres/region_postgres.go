package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"nzwalks/internal/database"
	"nzwalks/internal/model"
	"nzwalks/internal/repository"
)

// RegionPostgres is a PostgreSQL implementation of repository.RegionRepository.
// It uses parameterized queries and contains no business logic.
type RegionPostgres struct {
	store *database.Store
}

// NewRegionPostgres creates a new RegionPostgres repository.
func NewRegionPostgres(store *database.Store) *RegionPostgres {
	return &RegionPostgres{store: store}
}

var _ repository.RegionRepository = (*RegionPostgres)(nil)

const regionColumns = `id, code, name, region_image_url`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegion(s rowScanner) (*model.Region, error) {
	var r model.Region
	if err := s.Scan(&r.ID, &r.Code, &r.Name, &r.RegionImageURL); err != nil {
		return nil, err
	}
	return &r, nil
}

// regionRow runs a single-row statement. sql.ErrNoRows becomes the nil sentinel.
func (r *RegionPostgres) regionRow(ctx context.Context, op, q string, args ...any) (*model.Region, error) {
	var out *model.Region
	err := r.store.WithSession(ctx, func(s database.Session) error {
		region, err := scanRegion(s.QueryRowContext(ctx, q, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		out = region
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.RegionPostgres.%s: %w", op, err)
	}
	return out, nil
}

// GetAll returns every region in insertion order.
func (r *RegionPostgres) GetAll(ctx context.Context) ([]model.Region, error) {
	const q = `SELECT ` + regionColumns + ` FROM regions ORDER BY created_at, id`

	items := make([]model.Region, 0)
	err := r.store.WithSession(ctx, func(s database.Session) error {
		rows, err := s.QueryContext(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			region, err := scanRegion(rows)
			if err != nil {
				return err
			}
			items = append(items, *region)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.RegionPostgres.GetAll: %w", err)
	}
	return items, nil
}

// GetByID fetches a single region, or nil when absent.
func (r *RegionPostgres) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	const q = `SELECT ` + regionColumns + ` FROM regions WHERE id = $1`
	return r.regionRow(ctx, "GetByID", q, id)
}

// Create inserts a region under a freshly generated id.
func (r *RegionPostgres) Create(ctx context.Context, region *model.Region) (*model.Region, error) {
	const q = `
		INSERT INTO regions (id, code, name, region_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + regionColumns
	return r.regionRow(ctx, "Create", q, uuid.New(), region.Code, region.Name, region.RegionImageURL)
}

// Update overwrites code, name and image URL.
func (r *RegionPostgres) Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error) {
	const q = `
		UPDATE regions SET code = $2, name = $3, region_image_url = $4
		WHERE id = $1
		RETURNING ` + regionColumns
	return r.regionRow(ctx, "Update", q, id, region.Code, region.Name, region.RegionImageURL)
}

// Delete removes a region and returns the removed row. Regions still referenced
// by walks fail with a foreign key ConstraintError.
func (r *RegionPostgres) Delete(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	const q = `DELETE FROM regions WHERE id = $1 RETURNING ` + regionColumns
	return r.regionRow(ctx, "Delete", q, id)
}
