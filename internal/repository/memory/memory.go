// Package memory implements the repository contracts over in-process slices.
// It enforces the same foreign keys as the database and applies the same
// allow-listed query plan, which makes it a drop-in double for handler tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"nzwalks/internal/model"
	"nzwalks/internal/repository"
)

// Store holds every table. Slices keep insertion order, which is the native
// order GetAll falls back to.
type Store struct {
	mu           sync.RWMutex
	difficulties []model.Difficulty
	regions      []model.Region
	trails       []model.Trail
}

// NewStore returns an empty store seeded with the given difficulties.
func NewStore(difficulties ...model.Difficulty) *Store {
	return &Store{difficulties: slices.Clone(difficulties)}
}

// Regions returns a RegionRepository backed by s.
func (s *Store) Regions() *Regions { return &Regions{s: s} }

// Trails returns a TrailRepository backed by s.
func (s *Store) Trails() *Trails { return &Trails{s: s} }

func indexByID[T any](items []T, id uuid.UUID, key func(T) uuid.UUID) int {
	return slices.IndexFunc(items, func(it T) bool { return key(it) == id })
}

func regionID(r model.Region) uuid.UUID         { return r.ID }
func trailID(t model.Trail) uuid.UUID           { return t.ID }
func difficultyID(d model.Difficulty) uuid.UUID { return d.ID }

func foreignKey(constraint string, id uuid.UUID) error {
	return &repository.ConstraintError{
		Kind:       repository.ForeignKey,
		Constraint: constraint,
		Err:        fmt.Errorf("key %s is not present", id),
	}
}

// Regions implements repository.RegionRepository.
type Regions struct {
	s *Store
}

var _ repository.RegionRepository = (*Regions)(nil)

func (r *Regions) GetAll(ctx context.Context) ([]model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(make([]model.Region, 0, len(r.s.regions)), r.s.regions...), nil
}

func (r *Regions) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := indexByID(r.s.regions, id, regionID)
	if i < 0 {
		return nil, nil
	}
	out := r.s.regions[i]
	return &out, nil
}

func (r *Regions) Create(ctx context.Context, region *model.Region) (*model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row := *region
	row.ID = uuid.New()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.regions = append(r.s.regions, row)
	return &row, nil
}

func (r *Regions) Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexByID(r.s.regions, id, regionID)
	if i < 0 {
		return nil, nil
	}
	row := &r.s.regions[i]
	row.Code = region.Code
	row.Name = region.Name
	row.RegionImageURL = region.RegionImageURL
	out := *row
	return &out, nil
}

// Delete refuses to remove a region that walks still reference.
func (r *Regions) Delete(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexByID(r.s.regions, id, regionID)
	if i < 0 {
		return nil, nil
	}
	if slices.ContainsFunc(r.s.trails, func(t model.Trail) bool { return t.RegionID == id }) {
		return nil, foreignKey("walks_region_id_fkey", id)
	}
	out := r.s.regions[i]
	r.s.regions = slices.Delete(r.s.regions, i, i+1)
	return &out, nil
}

// Trails implements repository.TrailRepository.
type Trails struct {
	s *Store
}

var _ repository.TrailRepository = (*Trails)(nil)

// join fills the difficulty and region of t. Callers hold at least a read lock.
func (s *Store) join(t model.Trail) model.Trail {
	if i := indexByID(s.difficulties, t.DifficultyID, difficultyID); i >= 0 {
		t.Difficulty = s.difficulties[i]
	}
	if i := indexByID(s.regions, t.RegionID, regionID); i >= 0 {
		t.Region = s.regions[i]
	}
	return t
}

// checkRefs validates both foreign keys of t. Callers hold the write lock.
func (s *Store) checkRefs(t *model.Trail) error {
	if indexByID(s.difficulties, t.DifficultyID, difficultyID) < 0 {
		return foreignKey("walks_difficulty_id_fkey", t.DifficultyID)
	}
	if indexByID(s.regions, t.RegionID, regionID) < 0 {
		return foreignKey("walks_region_id_fkey", t.RegionID)
	}
	return nil
}

func (r *Trails) GetAll(ctx context.Context, q repository.TrailQuery) ([]model.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	joined := make([]model.Trail, 0, len(r.s.trails))
	for _, t := range r.s.trails {
		joined = append(joined, r.s.join(t))
	}
	r.s.mu.RUnlock()

	return repository.TrailFields.Resolve(q.Params()).Apply(joined), nil
}

func (r *Trails) GetByID(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := indexByID(r.s.trails, id, trailID)
	if i < 0 {
		return nil, nil
	}
	out := r.s.join(r.s.trails[i])
	return &out, nil
}

func (r *Trails) Create(ctx context.Context, t *model.Trail) (*model.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkRefs(t); err != nil {
		return nil, err
	}
	row := model.Trail{
		ID:           uuid.New(),
		Name:         t.Name,
		Description:  t.Description,
		LengthInKm:   t.LengthInKm,
		WalkImageURL: t.WalkImageURL,
		DifficultyID: t.DifficultyID,
		RegionID:     t.RegionID,
	}
	r.s.trails = append(r.s.trails, row)
	out := r.s.join(row)
	return &out, nil
}

func (r *Trails) Update(ctx context.Context, id uuid.UUID, t *model.Trail) (*model.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexByID(r.s.trails, id, trailID)
	if i < 0 {
		return nil, nil
	}
	if err := r.s.checkRefs(t); err != nil {
		return nil, err
	}
	row := &r.s.trails[i]
	row.Name = t.Name
	row.Description = t.Description
	row.LengthInKm = t.LengthInKm
	row.WalkImageURL = t.WalkImageURL
	row.DifficultyID = t.DifficultyID
	row.RegionID = t.RegionID
	out := r.s.join(*row)
	return &out, nil
}

func (r *Trails) Delete(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexByID(r.s.trails, id, trailID)
	if i < 0 {
		return nil, nil
	}
	out := r.s.join(r.s.trails[i])
	r.s.trails = slices.Delete(r.s.trails, i, i+1)
	return &out, nil
}
