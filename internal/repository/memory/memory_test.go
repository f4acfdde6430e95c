package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nzwalks/internal/model"
	"nzwalks/internal/repository"
)

var (
	easy = model.Difficulty{ID: uuid.New(), Name: "Easy"}
	hard = model.Difficulty{ID: uuid.New(), Name: "Hard"}
)

type fixture struct {
	store   *Store
	regions *Regions
	trails  *Trails
	region  model.Region
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := NewStore(easy, hard)
	regions := s.Regions()
	r, err := regions.Create(context.Background(), &model.Region{Code: "NTL", Name: "Northland"})
	require.NoError(t, err)
	return fixture{store: s, regions: regions, trails: s.Trails(), region: *r}
}

func (f fixture) seedTracks(t *testing.T) {
	t.Helper()
	for _, w := range []struct {
		name   string
		length float64
	}{
		{"Lake Track", 5.0},
		{"Hill Track", 10.0},
		{"Bay Track", 2.0},
	} {
		_, err := f.trails.Create(context.Background(), &model.Trail{
			Name:         w.name,
			Description:  w.name,
			LengthInKm:   w.length,
			DifficultyID: easy.ID,
			RegionID:     f.region.ID,
		})
		require.NoError(t, err)
	}
}

func names(ts []model.Trail) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestTrails_GetAll_SortByLengthFirstPage(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)

	got, err := f.trails.GetAll(context.Background(), repository.TrailQuery{
		SortBy: "Length", IsAscending: true, PageNumber: 1, PageSize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bay Track", "Lake Track"}, names(got))
	assert.Equal(t, 2.0, got[0].LengthInKm)
	assert.Equal(t, 5.0, got[1].LengthInKm)
}

func TestTrails_GetAll_FilterIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)

	got, err := f.trails.GetAll(context.Background(), repository.TrailQuery{
		FilterOn: "Name", FilterQuery: "track", IsAscending: true, PageNumber: 1, PageSize: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Lake Track", "Hill Track", "Bay Track"}, names(got))
}

func TestTrails_GetAll_UnknownFieldsAreIgnored(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)
	ctx := context.Background()

	all, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	require.NoError(t, err)

	q := repository.DefaultTrailQuery()
	q.FilterOn, q.FilterQuery, q.SortBy = "Bogus", "zzz", "Bogus"
	got, err := f.trails.GetAll(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestTrails_GetAll_DescendingIsReverseOfAscending(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)
	ctx := context.Background()

	asc, err := f.trails.GetAll(ctx, repository.TrailQuery{SortBy: "Length", IsAscending: true, PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	desc, err := f.trails.GetAll(ctx, repository.TrailQuery{SortBy: "Length", IsAscending: false, PageNumber: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, desc, 3)
	assert.Equal(t, []string{"Hill Track", "Lake Track", "Bay Track"}, names(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestTrails_GetAll_JoinsDifficultyAndRegion(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)

	got, err := f.trails.GetAll(context.Background(), repository.DefaultTrailQuery())

	require.NoError(t, err)
	for _, tr := range got {
		assert.Equal(t, easy, tr.Difficulty)
		assert.Equal(t, f.region, tr.Region)
	}
}

func TestTrails_CreateGetRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	img := "https://img/lake.jpg"
	in := &model.Trail{
		Name:         "Lake Track",
		Description:  "Around the lake",
		LengthInKm:   5,
		WalkImageURL: &img,
		DifficultyID: hard.ID,
		RegionID:     f.region.ID,
	}

	created, err := f.trails.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := f.trails.GetByID(ctx, created.ID)
	require.NoError(t, err)

	want := *in
	want.ID = created.ID
	want.Difficulty = hard
	want.Region = f.region
	assert.Equal(t, &want, got)
}

func TestTrails_Create_UnknownDifficulty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.trails.Create(ctx, &model.Trail{
		Name:         "Ghost Track",
		Description:  "x",
		DifficultyID: uuid.New(),
		RegionID:     f.region.ID,
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	all, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is persisted")
}

func TestTrails_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTracks(t)
	all, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	require.NoError(t, err)
	target := all[0]

	t.Run("replaces every field", func(t *testing.T) {
		out, err := f.trails.Update(ctx, target.ID, &model.Trail{
			Name: "Renamed", Description: "New", LengthInKm: 7, DifficultyID: hard.ID, RegionID: f.region.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, target.ID, out.ID)
		assert.Equal(t, "Renamed", out.Name)
		assert.Equal(t, hard, out.Difficulty)
	})

	t.Run("absent", func(t *testing.T) {
		out, err := f.trails.Update(ctx, uuid.New(), &model.Trail{DifficultyID: easy.ID, RegionID: f.region.ID})
		assert.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("dangling region", func(t *testing.T) {
		out, err := f.trails.Update(ctx, target.ID, &model.Trail{Name: "x", DifficultyID: easy.ID, RegionID: uuid.New()})
		assert.Nil(t, out)
		var ce *repository.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "walks_region_id_fkey", ce.Constraint)

		got, err := f.trails.GetByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})
}

func TestTrails_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTracks(t)
	before, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	require.NoError(t, err)

	out, err := f.trails.Delete(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, out)

	after, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	require.NoError(t, err)
	assert.Equal(t, before, after, "deleting an absent id changes nothing")

	out, err = f.trails.Delete(ctx, before[1].ID)
	require.NoError(t, err)
	assert.Equal(t, before[1], *out)

	gone, err := f.trails.GetByID(ctx, before[1].ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRegions_CRUD(t *testing.T) {
	s := NewStore(easy)
	regions := s.Regions()
	ctx := context.Background()

	created, err := regions.Create(ctx, &model.Region{Code: "AKL", Name: "Auckland"})
	require.NoError(t, err)
	_, err = regions.Create(ctx, &model.Region{Code: "WLG", Name: "Wellington"})
	require.NoError(t, err)

	all, err := regions.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AKL", "WLG"}, []string{all[0].Code, all[1].Code})

	updated, err := regions.Update(ctx, created.ID, &model.Region{Code: "AUK", Name: "Auckland Region"})
	require.NoError(t, err)
	assert.Equal(t, "AUK", updated.Code)

	deleted, err := regions.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *deleted)

	missing, err := regions.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = regions.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegions_Delete_ReferencedByWalk(t *testing.T) {
	f := newFixture(t)
	f.seedTracks(t)

	out, err := f.regions.Delete(context.Background(), f.region.ID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
}

func TestRegions_GetAll_ReturnsCopy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.regions.GetAll(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	again, err := f.regions.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Northland", again[0].Name)
}

func TestCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.trails.GetAll(ctx, repository.DefaultTrailQuery())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = f.regions.Create(ctx, &model.Region{Code: "ZZZ", Name: "Nowhere"})
	assert.ErrorIs(t, err, context.Canceled)
}
