package mocks

import (
	"context"
	"io"

	"docmap/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockMindmapService struct {
	mock.Mock
}

func (m *MockMindmapService) Generate(ctx context.Context, r io.ReaderAt, filename string, size int64) (*model.Mindmap, error) {
	args := m.Called(ctx, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mindmap), args.Error(1)
}

func (m *MockMindmapService) List(ctx context.Context, limit int) ([]*model.Mindmap, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Mindmap), args.Error(1)
}

func (m *MockMindmapService) Get(ctx context.Context, id string) (*model.Mindmap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mindmap), args.Error(1)
}

func (m *MockMindmapService) Questions(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMindmapService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMindmapService) Model() string {
	args := m.Called()
	return args.String(0)
}
