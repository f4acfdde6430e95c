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

// ImagePostgres stores uploaded image metadata.
type ImagePostgres struct {
	store *database.Store
}

// NewImagePostgres creates a new ImagePostgres repository.
func NewImagePostgres(store *database.Store) *ImagePostgres {
	return &ImagePostgres{store: store}
}

var _ repository.ImageRepository = (*ImagePostgres)(nil)

const imageColumns = `id, file_name, file_description, file_extension, file_size_in_bytes,
		file_path, thumbnail_path, content_type, created_at`

func scanImage(s rowScanner) (*model.Image, error) {
	var img model.Image
	if err := s.Scan(
		&img.ID,
		&img.FileName,
		&img.FileDescription,
		&img.FileExtension,
		&img.FileSizeInBytes,
		&img.FilePath,
		&img.ThumbnailPath,
		&img.ContentType,
		&img.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &img, nil
}

// Create inserts an image row. The caller assigns the id because it is also
// part of the object storage key.
func (r *ImagePostgres) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	const q = `
		INSERT INTO images (id, file_name, file_description, file_extension, file_size_in_bytes,
			file_path, thumbnail_path, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + imageColumns

	var out *model.Image
	err := r.store.WithSession(ctx, func(s database.Session) error {
		stored, err := scanImage(s.QueryRowContext(ctx, q,
			img.ID,
			img.FileName,
			img.FileDescription,
			img.FileExtension,
			img.FileSizeInBytes,
			img.FilePath,
			img.ThumbnailPath,
			img.ContentType,
			img.CreatedAt,
		))
		if err != nil {
			return classify(err)
		}
		out = stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.ImagePostgres.Create: %w", err)
	}
	return out, nil
}

// GetByID fetches image metadata, or nil when absent.
func (r *ImagePostgres) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	var out *model.Image
	err := r.store.WithSession(ctx, func(s database.Session) error {
		img, err := scanImage(s.QueryRowContext(ctx, q, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		out = img
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.ImagePostgres.GetByID: %w", err)
	}
	return out, nil
}
