package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nzwalks/internal/database"
	"nzwalks/internal/model"
	"nzwalks/internal/query"
	"nzwalks/internal/repository"
)

// TrailPostgres is a PostgreSQL implementation of repository.TrailRepository.
// Every read joins the walk's difficulty and region.
type TrailPostgres struct {
	store *database.Store
}

// NewTrailPostgres creates a new TrailPostgres repository.
func NewTrailPostgres(store *database.Store) *TrailPostgres {
	return &TrailPostgres{store: store}
}

var _ repository.TrailRepository = (*TrailPostgres)(nil)

const (
	trailColumns = `w.id, w.name, w.description, w.length_in_km, w.walk_image_url,
		w.difficulty_id, w.region_id,
		d.id, d.name,
		r.id, r.code, r.name, r.region_image_url`

	trailJoins = `
		JOIN difficulties d ON d.id = w.difficulty_id
		JOIN regions r ON r.id = w.region_id`

	// storeOrder is appended to every ORDER BY so ties keep insertion order.
	storeOrder = `w.created_at, w.id`
)

func scanTrail(s rowScanner) (*model.Trail, error) {
	var t model.Trail
	if err := s.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.LengthInKm,
		&t.WalkImageURL,
		&t.DifficultyID,
		&t.RegionID,
		&t.Difficulty.ID,
		&t.Difficulty.Name,
		&t.Region.ID,
		&t.Region.Code,
		&t.Region.Name,
		&t.Region.RegionImageURL,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches needle literally anywhere.
func containsPattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

// buildListQuery renders a resolved plan as filter, then sort, then page.
// Column names come only from the allow-list; user input is always bound.
func buildListQuery(plan query.Plan[model.Trail]) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(`SELECT ` + trailColumns + ` FROM walks w` + trailJoins)

	if plan.Filter != nil {
		args = append(args, containsPattern(plan.Needle))
		fmt.Fprintf(&b, "\n\t\tWHERE %s ILIKE $%d ESCAPE '\\'", plan.Filter.Column, len(args))
	}

	b.WriteString("\n\t\tORDER BY ")
	if plan.Sort != nil {
		dir := "DESC"
		if plan.Ascending {
			dir = "ASC"
		}
		fmt.Fprintf(&b, "%s %s, ", plan.Sort.Column, dir)
	}
	b.WriteString(storeOrder)

	args = append(args, plan.Limit, plan.Offset)
	fmt.Fprintf(&b, "\n\t\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return b.String(), args
}

// GetAll returns walks filtered, sorted and paged according to q.
// Unknown filter or sort fields are ignored.
func (r *TrailPostgres) GetAll(ctx context.Context, q repository.TrailQuery) ([]model.Trail, error) {
	stmt, args := buildListQuery(repository.TrailFields.Resolve(q.Params()))

	items := make([]model.Trail, 0)
	err := r.store.WithSession(ctx, func(s database.Session) error {
		rows, err := s.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			t, err := scanTrail(rows)
			if err != nil {
				return err
			}
			items = append(items, *t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.TrailPostgres.GetAll: %w", err)
	}
	return items, nil
}

func (r *TrailPostgres) trailRow(ctx context.Context, op, q string, args ...any) (*model.Trail, error) {
	var out *model.Trail
	err := r.store.WithSession(ctx, func(s database.Session) error {
		t, err := scanTrail(s.QueryRowContext(ctx, q, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.TrailPostgres.%s: %w", op, err)
	}
	return out, nil
}

// GetByID fetches a single walk, or nil when absent.
func (r *TrailPostgres) GetByID(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	const q = `SELECT ` + trailColumns + ` FROM walks w` + trailJoins + `
		WHERE w.id = $1`
	return r.trailRow(ctx, "GetByID", q, id)
}

// Create inserts a walk under a fresh id. Unknown difficulty or region ids fail
// with a foreign key ConstraintError and nothing is written.
func (r *TrailPostgres) Create(ctx context.Context, t *model.Trail) (*model.Trail, error) {
	const q = `
		WITH w AS (
			INSERT INTO walks (id, name, description, length_in_km, walk_image_url, difficulty_id, region_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + trailColumns + ` FROM w` + trailJoins
	return r.trailRow(ctx, "Create", q,
		uuid.New(),
		t.Name,
		t.Description,
		t.LengthInKm,
		t.WalkImageURL,
		t.DifficultyID,
		t.RegionID,
	)
}

// Update replaces every mutable field of the walk with the given id.
func (r *TrailPostgres) Update(ctx context.Context, id uuid.UUID, t *model.Trail) (*model.Trail, error) {
	const q = `
		WITH w AS (
			UPDATE walks
			SET name = $2, description = $3, length_in_km = $4, walk_image_url = $5,
			    difficulty_id = $6, region_id = $7
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + trailColumns + ` FROM w` + trailJoins
	return r.trailRow(ctx, "Update", q,
		id,
		t.Name,
		t.Description,
		t.LengthInKm,
		t.WalkImageURL,
		t.DifficultyID,
		t.RegionID,
	)
}

// Delete removes a walk and returns it as it was.
func (r *TrailPostgres) Delete(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	const q = `
		WITH w AS (
			DELETE FROM walks WHERE id = $1
			RETURNING *
		)
		SELECT ` + trailColumns + ` FROM w` + trailJoins
	return r.trailRow(ctx, "Delete", q, id)
}
