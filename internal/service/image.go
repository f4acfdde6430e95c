package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"nzwalks/internal/model"
	"nzwalks/internal/repository"
	"nzwalks/internal/storage"
)

var (
	ErrReaderNil            = errors.New("reader is nil")
	ErrNotFound             = errors.New("image not found")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileTooLarge         = errors.New("file too large")
	ErrInvalidImage         = errors.New("file is not a valid jpeg or png image")
)

const (
	imagePrefix     = "images"
	thumbnailPrefix = "images/thumbnails"
	thumbnailSize   = 300
	urlExpiry       = 15 * time.Minute

	// maxPixels bounds the decode buffer, which is sized from the header alone.
	maxPixels = 40_000_000
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadInput describes one image upload.
type UploadInput struct {
	File             io.Reader
	OriginalFilename string
	FileName         string
	FileDescription  *string
	Size             int64
}

// ImageResult is an image's metadata plus time-limited download URLs.
type ImageResult struct {
	Image        *model.Image `json:"image"`
	URL          string       `json:"url"`
	ThumbnailURL string       `json:"thumbnailUrl"`
}

// ImageService handles walk image uploads.
type ImageService interface {
	// Upload validates the file, stores the original and a thumbnail, then
	// saves metadata. Stored objects are removed again when the metadata write fails.
	Upload(ctx context.Context, in UploadInput) (*ImageResult, error)

	// Get returns metadata and fresh download URLs for an uploaded image.
	Get(ctx context.Context, id uuid.UUID) (*ImageResult, error)

	// Open streams the original bytes of an uploaded image.
	Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *model.Image, error)
}

type imageService struct {
	store    storage.Storage
	repo     repository.ImageRepository
	maxBytes int64
}

// NewImageService constructs an ImageService accepting files up to maxBytes.
func NewImageService(store storage.Storage, repo repository.ImageRepository, maxBytes int64) ImageService {
	return &imageService{store: store, repo: repo, maxBytes: maxBytes}
}

// validate checks the extension and size before any bytes are read.
func (s *imageService) validate(in UploadInput) (string, error) {
	if in.File == nil {
		return "", ErrReaderNil
	}
	ext := strings.ToLower(filepath.Ext(in.OriginalFilename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	if in.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, in.Size, s.maxBytes)
	}
	return ext, nil
}

func (s *imageService) Upload(ctx context.Context, in UploadInput) (*ImageResult, error) {
	ext, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(in.File, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || (format != "jpeg" && format != "png") {
		return nil, ErrInvalidImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidImage, cfg.Width, cfg.Height, maxPixels)
	}
	thumb, err := thumbnail(data)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := path.Join(imagePrefix, id.String()+ext)
	thumbKey := path.Join(thumbnailPrefix, id.String()+".jpg")
	contentType := "image/" + format

	name := strings.TrimSpace(in.FileName)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(in.OriginalFilename), filepath.Ext(in.OriginalFilename))
	}

	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": in.OriginalFilename},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if _, err := s.store.Put(ctx, thumbKey, bytes.NewReader(thumb), storage.PutObjectOptions{
		Size:        int64(len(thumb)),
		ContentType: "image/jpeg",
	}); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("upload thumbnail: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Image{
		ID:              id,
		FileName:        name,
		FileDescription: in.FileDescription,
		FileExtension:   ext,
		FileSizeInBytes: int64(len(data)),
		FilePath:        key,
		ThumbnailPath:   thumbKey,
		ContentType:     contentType,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		if delErr := errors.Join(s.store.Delete(ctx, key), s.store.Delete(ctx, thumbKey)); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return s.withURLs(ctx, stored)
}

func (s *imageService) Get(ctx context.Context, id uuid.UUID) (*ImageResult, error) {
	img, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withURLs(ctx, img)
}

func (s *imageService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *model.Image, error) {
	img, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, img.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open from storage: %w", err)
	}
	return rc, img, nil
}

func (s *imageService) find(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNotFound
	}
	return img, nil
}

func (s *imageService) withURLs(ctx context.Context, img *model.Image) (*ImageResult, error) {
	u, err := s.store.PresignGet(ctx, img.FilePath, urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}
	tu, err := s.store.PresignGet(ctx, img.ThumbnailPath, urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign thumbnail: %w", err)
	}
	return &ImageResult{Image: img, URL: u, ThumbnailURL: tu}, nil
}

// thumbnail fits the image into a square of thumbnailSize pixels and encodes it as JPEG.
func thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}
	var buf bytes.Buffer
	resized := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
