package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nzwalks/internal/model"
	"nzwalks/internal/repository"
)

var trailCols = []string{
	"id", "name", "description", "length_in_km", "walk_image_url",
	"difficulty_id", "region_id",
	"id", "name",
	"id", "code", "name", "region_image_url",
}

var (
	easyID   = uuid.MustParse("54466f17-02af-48e7-8ed3-5a4a8bfacf6f")
	regionID = uuid.MustParse("6884f7d7-ad1f-4101-8df3-7a6fa7387d81")
)

func addTrail(rows *sqlmock.Rows, name string, length float64) *sqlmock.Rows {
	return rows.AddRow(
		uuid.NewString(), name, name+" description", length, nil,
		easyID.String(), regionID.String(),
		easyID.String(), "Easy",
		regionID.String(), "NTL", "Northland", nil,
	)
}

func trailNames(ts []model.Trail) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestBuildListQuery(t *testing.T) {
	plain, plainArgs := buildListQuery(repository.TrailFields.Resolve(repository.DefaultTrailQuery().Params()))

	t.Run("default query pages in store order", func(t *testing.T) {
		assert.NotContains(t, plain, "WHERE")
		assert.Contains(t, plain, "ORDER BY w.created_at, w.id")
		assert.Contains(t, plain, "LIMIT $1 OFFSET $2")
		assert.Equal(t, []any{1000, 0}, plainArgs)
	})

	t.Run("unknown fields render like no fields", func(t *testing.T) {
		q := repository.DefaultTrailQuery()
		q.FilterOn, q.FilterQuery, q.SortBy = "Bogus", "x", "Bogus"
		stmt, args := buildListQuery(repository.TrailFields.Resolve(q.Params()))
		assert.Equal(t, plain, stmt)
		assert.Equal(t, plainArgs, args)
	})

	t.Run("filter then sort then page", func(t *testing.T) {
		q := repository.TrailQuery{
			FilterOn: "Name", FilterQuery: "track",
			SortBy: "Length", IsAscending: false,
			PageNumber: 3, PageSize: 5,
		}
		stmt, args := buildListQuery(repository.TrailFields.Resolve(q.Params()))

		assert.Contains(t, stmt, `WHERE w.name ILIKE $1 ESCAPE '\'`)
		assert.Contains(t, stmt, "ORDER BY w.length_in_km DESC, w.created_at, w.id")
		assert.Contains(t, stmt, "LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{"%track%", 5, 10}, args)

		where := strings.Index(stmt, "WHERE")
		order := strings.Index(stmt, "ORDER BY")
		limit := strings.Index(stmt, "LIMIT")
		assert.True(t, where < order && order < limit)
	})

	t.Run("name sort is byte ordered", func(t *testing.T) {
		q := repository.DefaultTrailQuery()
		q.SortBy = "Name"
		stmt, _ := buildListQuery(repository.TrailFields.Resolve(q.Params()))
		assert.Contains(t, stmt, `ORDER BY w.name COLLATE "C" ASC, w.created_at, w.id`)
	})

	t.Run("field names are case sensitive", func(t *testing.T) {
		q := repository.DefaultTrailQuery()
		q.FilterOn, q.FilterQuery, q.SortBy = "name", "x", "length"
		stmt, _ := buildListQuery(repository.TrailFields.Resolve(q.Params()))
		assert.Equal(t, plain, stmt)
	})
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%track%", containsPattern("track"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

func TestTrailPostgres_GetAll_SortByLengthFirstPage(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTrailPostgres(store)

	mock.ExpectBegin()
	mock.ExpectQuery(`ORDER BY w\.length_in_km ASC, w\.created_at, w\.id\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 0).
		WillReturnRows(addTrail(addTrail(sqlmock.NewRows(trailCols), "Bay Track", 2.0), "Lake Track", 5.0))
	mock.ExpectCommit()

	q := repository.TrailQuery{SortBy: "Length", IsAscending: true, PageNumber: 1, PageSize: 2}
	got, err := repo.GetAll(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, []string{"Bay Track", "Lake Track"}, trailNames(got))
	assert.Equal(t, 2.0, got[0].LengthInKm)
	assert.Equal(t, "Easy", got[0].Difficulty.Name)
	assert.Equal(t, "NTL", got[0].Region.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailPostgres_GetAll_FilterByName(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTrailPostgres(store)

	rows := sqlmock.NewRows(trailCols)
	for _, n := range []string{"Lake Track", "Hill Track", "Bay Track"} {
		addTrail(rows, n, 1)
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE w\.name ILIKE \$1 ESCAPE`).
		WithArgs("%track%", 10, 0).
		WillReturnRows(rows)
	mock.ExpectCommit()

	q := repository.TrailQuery{FilterOn: "Name", FilterQuery: "track", IsAscending: true, PageNumber: 1, PageSize: 10}
	got, err := repo.GetAll(context.Background(), q)

	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailPostgres_GetAll_ClampsPageNumber(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTrailPostgres(store)

	mock.ExpectBegin()
	mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
		WithArgs(25, 0).
		WillReturnRows(sqlmock.NewRows(trailCols))
	mock.ExpectCommit()

	got, err := repo.GetAll(context.Background(), repository.TrailQuery{PageNumber: -3, PageSize: 25})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailPostgres_GetByID(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTrailPostgres(store)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM walks w\s+JOIN difficulties d ON d\.id = w\.difficulty_id\s+JOIN regions r ON r\.id = w\.region_id\s+WHERE w\.id = \$1`).
		WithArgs(id).
		WillReturnRows(addTrail(sqlmock.NewRows(trailCols), "Lake Track", 5))
	mock.ExpectCommit()

	got, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, easyID, got.DifficultyID)
	assert.Equal(t, regionID, got.Region.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailPostgres_Create(t *testing.T) {
	in := &model.Trail{
		Name:         "Lake Track",
		Description:  "Around the lake",
		LengthInKm:   5,
		DifficultyID: easyID,
		RegionID:     regionID,
	}

	t.Run("returns the stored row with joins", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)

		mock.ExpectBegin()
		mock.ExpectQuery(`WITH w AS \(\s*INSERT INTO walks`).
			WithArgs(sqlmock.AnyArg(), in.Name, in.Description, in.LengthInKm, in.WalkImageURL, in.DifficultyID, in.RegionID).
			WillReturnRows(addTrail(sqlmock.NewRows(trailCols), in.Name, in.LengthInKm))
		mock.ExpectCommit()

		out, err := repo.Create(context.Background(), in)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, out.ID)
		assert.Equal(t, in.Name, out.Name)
		assert.Equal(t, "Northland", out.Region.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown difficulty is a constraint violation and rolls back", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO walks`).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "walks_difficulty_id_fkey"})
		mock.ExpectRollback()

		bad := *in
		bad.DifficultyID = uuid.New()
		out, err := repo.Create(context.Background(), &bad)

		assert.Nil(t, out)
		var ce *repository.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, repository.ForeignKey, ce.Kind)
		assert.Equal(t, "walks_difficulty_id_fkey", ce.Constraint)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTrailPostgres_Update(t *testing.T) {
	ctx := context.Background()
	in := &model.Trail{Name: "Hill Track", Description: "Up", LengthInKm: 10, DifficultyID: easyID, RegionID: regionID}

	t.Run("returns the updated row with joins", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`(?s)WITH w AS \(\s*UPDATE walks\s+SET name = \$2.*WHERE id = \$1\s+RETURNING \*\s*\)\s*SELECT .* FROM w\s+JOIN difficulties d`).
			WithArgs(id, in.Name, in.Description, in.LengthInKm, in.WalkImageURL, in.DifficultyID, in.RegionID).
			WillReturnRows(sqlmock.NewRows(trailCols).AddRow(
				id.String(), in.Name, in.Description, in.LengthInKm, nil,
				easyID.String(), regionID.String(),
				easyID.String(), "Easy",
				regionID.String(), "NTL", "Northland", nil,
			))
		mock.ExpectCommit()

		out, err := repo.Update(ctx, id, in)

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, id, out.ID)
		assert.Equal(t, in.Name, out.Name)
		assert.Equal(t, in.LengthInKm, out.LengthInKm)
		assert.Equal(t, model.Difficulty{ID: easyID, Name: "Easy"}, out.Difficulty)
		assert.Equal(t, "NTL", out.Region.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent walk is nil without error", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`WITH w AS \(\s*UPDATE walks`).
			WithArgs(id, in.Name, in.Description, in.LengthInKm, in.WalkImageURL, in.DifficultyID, in.RegionID).
			WillReturnRows(sqlmock.NewRows(trailCols))
		mock.ExpectCommit()

		out, err := repo.Update(ctx, id, in)

		assert.NoError(t, err)
		assert.Nil(t, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	for _, tt := range []struct {
		name       string
		mutate     func(*model.Trail)
		constraint string
	}{
		{"unknown difficulty", func(w *model.Trail) { w.DifficultyID = uuid.New() }, "walks_difficulty_id_fkey"},
		{"unknown region", func(w *model.Trail) { w.RegionID = uuid.New() }, "walks_region_id_fkey"},
	} {
		t.Run(tt.name+" is a constraint violation and rolls back", func(t *testing.T) {
			store, mock := newMockStore(t)
			repo := NewTrailPostgres(store)

			mock.ExpectBegin()
			mock.ExpectQuery(`UPDATE walks`).
				WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: tt.constraint})
			mock.ExpectRollback()

			bad := *in
			tt.mutate(&bad)
			out, err := repo.Update(ctx, uuid.New(), &bad)

			assert.Nil(t, out)
			assert.ErrorIs(t, err, repository.ErrConstraintViolation)
			var ce *repository.ConstraintError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, repository.ForeignKey, ce.Kind)
			assert.Equal(t, tt.constraint, ce.Constraint)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTrailPostgres_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the deleted row", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`WITH w AS \(\s*DELETE FROM walks WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(addTrail(sqlmock.NewRows(trailCols), "Bay Track", 2))
		mock.ExpectCommit()

		out, err := repo.Delete(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Bay Track", out.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent walk is nil without error", func(t *testing.T) {
		store, mock := newMockStore(t)
		repo := NewTrailPostgres(store)

		mock.ExpectBegin()
		mock.ExpectQuery(`DELETE FROM walks`).WillReturnRows(sqlmock.NewRows(trailCols))
		mock.ExpectCommit()

		out, err := repo.Delete(ctx, uuid.New())

		assert.NoError(t, err)
		assert.Nil(t, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
