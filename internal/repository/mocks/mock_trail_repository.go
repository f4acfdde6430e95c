package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"nzwalks/internal/model"
	"nzwalks/internal/repository"
)

type MockTrailRepository struct {
	mock.Mock
}

func (m *MockTrailRepository) GetAll(ctx context.Context, q repository.TrailQuery) ([]model.Trail, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trail), args.Error(1)
}

func (m *MockTrailRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trail), args.Error(1)
}

func (m *MockTrailRepository) Create(ctx context.Context, t *model.Trail) (*model.Trail, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trail), args.Error(1)
}

func (m *MockTrailRepository) Update(ctx context.Context, id uuid.UUID, t *model.Trail) (*model.Trail, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trail), args.Error(1)
}

func (m *MockTrailRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Trail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trail), args.Error(1)
}
