package game

import (
	"github.com/stretchr/testify/mock"

	"github.com/davidmtz/battleship-api/internal/user"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateGame(owner string, shipLocation, attempts int) (*Game, error) {
	args := m.Called(owner, shipLocation, attempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) SaveGame(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGameRepository) GetGame(key string) (*Game, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) DeleteGame(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGameRepository) GetUserGames(owner string) ([]Game, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByName(name string) (*user.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockScoreKeeper struct {
	mock.Mock
}

func (m *MockScoreKeeper) RecordWin(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockScoreKeeper) RecordLoss(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}
