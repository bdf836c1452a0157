package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

var _ catalogStore = &catalogStoreMock{}

type catalogStoreMock struct {
	CreateFunc       func(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Create       []*domain.Movie
		UpdateFields []uuid.UUID
		Delete       []uuid.UUID
	}
	mu sync.Mutex
}

func (mock *catalogStoreMock) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	if mock.CreateFunc == nil {
		panic("catalogStoreMock.CreateFunc: method is nil but catalogStore.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, m)
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *catalogStoreMock) UpdateFields(ctx context.Context, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error) {
	if mock.UpdateFieldsFunc == nil {
		panic("catalogStoreMock.UpdateFieldsFunc: method is nil but catalogStore.UpdateFields was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateFields = append(mock.calls.UpdateFields, id)
	mock.mu.Unlock()
	return mock.UpdateFieldsFunc(ctx, id, draft)
}

func (mock *catalogStoreMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("catalogStoreMock.DeleteFunc: method is nil but catalogStore.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *catalogStoreMock) CreateCalls() []*domain.Movie {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *catalogStoreMock) UpdateFieldsCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateFields
}

func (mock *catalogStoreMock) DeleteCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Delete
}

var _ changeStore = &changeStoreMock{}

type casCall struct {
	ID       uuid.UUID
	Expected domain.ChangeStatus
	Next     domain.ChangeStatus
	Meta     domain.ReviewMeta
}

type changeStoreMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error)
	CompareAndSetStatusFunc func(ctx context.Context, id uuid.UUID, expected, next domain.ChangeStatus, meta domain.ReviewMeta) (bool, error)
	DeleteIfPendingFunc     func(ctx context.Context, id uuid.UUID) (bool, bool, error)

	calls struct {
		GetByID             []uuid.UUID
		CompareAndSetStatus []casCall
		DeleteIfPending     []uuid.UUID
	}
	mu sync.Mutex
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

func (mock *changeStoreMock) CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next domain.ChangeStatus, meta domain.ReviewMeta) (bool, error) {
	if mock.CompareAndSetStatusFunc == nil {
		panic("changeStoreMock.CompareAndSetStatusFunc: method is nil but changeStore.CompareAndSetStatus was just called")
	}
	mock.mu.Lock()
	mock.calls.CompareAndSetStatus = append(mock.calls.CompareAndSetStatus, casCall{ID: id, Expected: expected, Next: next, Meta: meta})
	mock.mu.Unlock()
	return mock.CompareAndSetStatusFunc(ctx, id, expected, next, meta)
}

func (mock *changeStoreMock) DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, bool, error) {
	if mock.DeleteIfPendingFunc == nil {
		panic("changeStoreMock.DeleteIfPendingFunc: method is nil but changeStore.DeleteIfPending was just called")
	}
	mock.mu.Lock()
	mock.calls.DeleteIfPending = append(mock.calls.DeleteIfPending, id)
	mock.mu.Unlock()
	return mock.DeleteIfPendingFunc(ctx, id)
}

func (mock *changeStoreMock) CompareAndSetStatusCalls() []casCall {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.CompareAndSetStatus
}

// passTx runs the callback directly; rolled-back work is simulated by the
// callback's error reaching the caller.
type passTx struct {
	mu   sync.Mutex
	runs int
}

func (t *passTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.runs++
	t.mu.Unlock()
	return fn(ctx)
}

type invalidatorMock struct {
	InvalidateFunc func(ctx context.Context) error

	mu    sync.Mutex
	count int
}

func (mock *invalidatorMock) Invalidate(ctx context.Context) error {
	mock.mu.Lock()
	mock.count++
	mock.mu.Unlock()
	if mock.InvalidateFunc == nil {
		return nil
	}
	return mock.InvalidateFunc(ctx)
}

func (mock *invalidatorMock) Count() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.count
}
