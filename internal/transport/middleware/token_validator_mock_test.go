package middleware

import (
	"sync"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (domain.Actor, error)

	calls struct {
		ValidateAccessToken []string
	}
	lock sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateAccessToken(token string) (domain.Actor, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAccessTokenFunc: method is nil but tokenValidator.ValidateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, token)
	mock.lock.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateAccessTokenCalls() []string {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ValidateAccessToken
}
