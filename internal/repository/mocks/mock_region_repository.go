package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"nzwalks/internal/model"
)

type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Region), args.Error(1)
}

func (m *MockRegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}

func (m *MockRegionRepository) Create(ctx context.Context, region *model.Region) (*model.Region, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}

func (m *MockRegionRepository) Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error) {
	args := m.Called(ctx, id, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}

func (m *MockRegionRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}
