package score

import (
	"github.com/stretchr/testify/mock"

	"github.com/davidmtz/battleship-api/internal/user"
)

type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) GetOrCreate(userID uint) (*Score, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Score), args.Error(1)
}

func (m *MockScoreRepository) Update(s *Score) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockScoreRepository) FindByUserID(userID uint) (*Score, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Score), args.Error(1)
}

func (m *MockScoreRepository) TopByVictories(limit int) ([]ScoreEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScoreEntry), args.Error(1)
}

func (m *MockScoreRepository) TopByPercentage(limit int) ([]ScoreEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScoreEntry), args.Error(1)
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
