package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"nzwalks/internal/model"
	"nzwalks/internal/service"
)

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, in service.UploadInput) (*service.ImageResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageResult), args.Error(1)
}

func (m *MockImageService) Get(ctx context.Context, id uuid.UUID) (*service.ImageResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageResult), args.Error(1)
}

func (m *MockImageService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Image), args.Error(2)
}
