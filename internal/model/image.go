package model

import (
	"time"

	"github.com/google/uuid"
)

// Image is the metadata of an uploaded walk image.
// The bytes live in object storage under FilePath; ThumbnailPath holds the resized copy.
type Image struct {
	ID              uuid.UUID `json:"id"`
	FileName        string    `json:"fileName"`
	FileDescription *string   `json:"fileDescription,omitempty"`
	FileExtension   string    `json:"fileExtension"`
	FileSizeInBytes int64     `json:"fileSizeInBytes"`
	FilePath        string    `json:"filePath"`
	ThumbnailPath   string    `json:"thumbnailPath"`
	ContentType     string    `json:"contentType"`
	CreatedAt       time.Time `json:"createdAt"`
}
