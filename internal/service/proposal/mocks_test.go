package proposal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

var _ catalogStore = &catalogStoreMock{}

type catalogStoreMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Movie, error)

	calls struct {
		GetByID []uuid.UUID
	}
	mu sync.Mutex
}

func (mock *catalogStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	if mock.GetByIDFunc == nil {
		panic("catalogStoreMock.GetByIDFunc: method is nil but catalogStore.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *catalogStoreMock) GetByIDCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
}

var _ changeStore = &changeStoreMock{}

type changeStoreMock struct {
	CreateFunc  func(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error)
	ListFunc    func(ctx context.Context, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error)

	calls struct {
		Create  []*domain.ChangeRecord
		GetByID []uuid.UUID
		List    []domain.ChangeFilter
	}
	mu sync.Mutex
}

func (mock *changeStoreMock) Create(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
	if mock.CreateFunc == nil {
		panic("changeStoreMock.CreateFunc: method is nil but changeStore.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, rec)
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *changeStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("changeStoreMock.GetByIDFunc: method is nil but changeStore.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *changeStoreMock) List(ctx context.Context, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error) {
	if mock.ListFunc == nil {
		panic("changeStoreMock.ListFunc: method is nil but changeStore.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, filter)
	mock.mu.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *changeStoreMock) CreateCalls() []*domain.ChangeRecord {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *changeStoreMock) ListCalls() []domain.ChangeFilter {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.List
}
