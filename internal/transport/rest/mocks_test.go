package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
	"github.com/cineamore/cineamore-backend/internal/service/moderation"
	"github.com/cineamore/cineamore-backend/internal/service/proposal"
)

var _ proposalService = &proposalServiceMock{}

type proposalServiceMock struct {
	ProposeCreateFunc func(ctx context.Context, actor domain.Actor, input proposal.DraftInput) (*domain.ChangeRecord, error)
	ProposeUpdateFunc func(ctx context.Context, actor domain.Actor, targetID uuid.UUID, input proposal.DraftInput) (*domain.ChangeRecord, error)
	ProposeDeleteFunc func(ctx context.Context, actor domain.Actor, targetID uuid.UUID) (*domain.ChangeRecord, error)
	ListFunc          func(ctx context.Context, actor domain.Actor, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error)
	GetFunc           func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChangeRecord, error)

	calls struct {
		ProposeCreate []proposal.DraftInput
		List          []domain.ChangeFilter
	}
	lock sync.Mutex
}

func (mock *proposalServiceMock) ProposeCreate(ctx context.Context, actor domain.Actor, input proposal.DraftInput) (*domain.ChangeRecord, error) {
	if mock.ProposeCreateFunc == nil {
		panic("proposalServiceMock.ProposeCreateFunc: method is nil but proposalService.ProposeCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.ProposeCreate = append(mock.calls.ProposeCreate, input)
	mock.lock.Unlock()
	return mock.ProposeCreateFunc(ctx, actor, input)
}

func (mock *proposalServiceMock) ProposeUpdate(ctx context.Context, actor domain.Actor, targetID uuid.UUID, input proposal.DraftInput) (*domain.ChangeRecord, error) {
	if mock.ProposeUpdateFunc == nil {
		panic("proposalServiceMock.ProposeUpdateFunc: method is nil but proposalService.ProposeUpdate was just called")
	}
	return mock.ProposeUpdateFunc(ctx, actor, targetID, input)
}

func (mock *proposalServiceMock) ProposeDelete(ctx context.Context, actor domain.Actor, targetID uuid.UUID) (*domain.ChangeRecord, error) {
	if mock.ProposeDeleteFunc == nil {
		panic("proposalServiceMock.ProposeDeleteFunc: method is nil but proposalService.ProposeDelete was just called")
	}
	return mock.ProposeDeleteFunc(ctx, actor, targetID)
}

func (mock *proposalServiceMock) List(ctx context.Context, actor domain.Actor, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error) {
	if mock.ListFunc == nil {
		panic("proposalServiceMock.ListFunc: method is nil but proposalService.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, filter)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, actor, filter)
}

func (mock *proposalServiceMock) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChangeRecord, error) {
	if mock.GetFunc == nil {
		panic("proposalServiceMock.GetFunc: method is nil but proposalService.Get was just called")
	}
	return mock.GetFunc(ctx, actor, id)
}

func (mock *proposalServiceMock) ProposeCreateCalls() []proposal.DraftInput {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.ProposeCreate
}

func (mock *proposalServiceMock) ListCalls() []domain.ChangeFilter {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.List
}

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	DecideFunc     func(ctx context.Context, actor domain.Actor, id uuid.UUID, decision domain.Decision, note *string) (*domain.ChangeRecord, error)
	BulkDecideFunc func(ctx context.Context, actor domain.Actor, ids []uuid.UUID, decision domain.Decision, note *string) (moderation.BulkResult, error)
	DiscardFunc    func(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

func (mock *moderationServiceMock) Decide(ctx context.Context, actor domain.Actor, id uuid.UUID, decision domain.Decision, note *string) (*domain.ChangeRecord, error) {
	if mock.DecideFunc == nil {
		panic("moderationServiceMock.DecideFunc: method is nil but moderationService.Decide was just called")
	}
	return mock.DecideFunc(ctx, actor, id, decision, note)
}

func (mock *moderationServiceMock) BulkDecide(ctx context.Context, actor domain.Actor, ids []uuid.UUID, decision domain.Decision, note *string) (moderation.BulkResult, error) {
	if mock.BulkDecideFunc == nil {
		panic("moderationServiceMock.BulkDecideFunc: method is nil but moderationService.BulkDecide was just called")
	}
	return mock.BulkDecideFunc(ctx, actor, ids, decision, note)
}

func (mock *moderationServiceMock) Discard(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if mock.DiscardFunc == nil {
		panic("moderationServiceMock.DiscardFunc: method is nil but moderationService.Discard was just called")
	}
	return mock.DiscardFunc(ctx, actor, id)
}

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	FindFunc        func(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByAliasFunc  func(ctx context.Context, alias string) (*domain.Movie, error)
	RateFunc        func(ctx context.Context, movieID uuid.UUID, stars int) (*domain.Movie, error)
	AdminCreateFunc func(ctx context.Context, actor domain.Actor, draft *domain.MovieDraft) (*domain.Movie, error)
	AdminUpdateFunc func(ctx context.Context, actor domain.Actor, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error)
	AdminDeleteFunc func(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

func (mock *catalogServiceMock) Find(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error) {
	if mock.FindFunc == nil {
		panic("catalogServiceMock.FindFunc: method is nil but catalogService.Find was just called")
	}
	return mock.FindFunc(ctx, filter)
}

func (mock *catalogServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	if mock.GetByIDFunc == nil {
		panic("catalogServiceMock.GetByIDFunc: method is nil but catalogService.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *catalogServiceMock) GetByAlias(ctx context.Context, alias string) (*domain.Movie, error) {
	if mock.GetByAliasFunc == nil {
		panic("catalogServiceMock.GetByAliasFunc: method is nil but catalogService.GetByAlias was just called")
	}
	return mock.GetByAliasFunc(ctx, alias)
}

func (mock *catalogServiceMock) Rate(ctx context.Context, movieID uuid.UUID, stars int) (*domain.Movie, error) {
	if mock.RateFunc == nil {
		panic("catalogServiceMock.RateFunc: method is nil but catalogService.Rate was just called")
	}
	return mock.RateFunc(ctx, movieID, stars)
}

func (mock *catalogServiceMock) AdminCreate(ctx context.Context, actor domain.Actor, draft *domain.MovieDraft) (*domain.Movie, error) {
	if mock.AdminCreateFunc == nil {
		panic("catalogServiceMock.AdminCreateFunc: method is nil but catalogService.AdminCreate was just called")
	}
	return mock.AdminCreateFunc(ctx, actor, draft)
}

func (mock *catalogServiceMock) AdminUpdate(ctx context.Context, actor domain.Actor, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error) {
	if mock.AdminUpdateFunc == nil {
		panic("catalogServiceMock.AdminUpdateFunc: method is nil but catalogService.AdminUpdate was just called")
	}
	return mock.AdminUpdateFunc(ctx, actor, id, draft)
}

func (mock *catalogServiceMock) AdminDelete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if mock.AdminDeleteFunc == nil {
		panic("catalogServiceMock.AdminDeleteFunc: method is nil but catalogService.AdminDelete was just called")
	}
	return mock.AdminDeleteFunc(ctx, actor, id)
}
