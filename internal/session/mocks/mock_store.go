package mocks

import (
	"docmap/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(mm *model.Mindmap) {
	m.Called(mm)
}

func (m *MockStore) Get(id string) (*model.Mindmap, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.Mindmap), args.Bool(1)
}

func (m *MockStore) List(limit int) []*model.Mindmap {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Mindmap)
}

func (m *MockStore) Delete(id string) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockStore) Len() int {
	args := m.Called()
	return args.Int(0)
}
