package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/davidmtz/battleship-api/internal/apperrors"
	"github.com/davidmtz/battleship-api/internal/user"
)

func newTestGameService() (*GameService, *MockGameRepository, *MockUserFinder, *MockScoreKeeper) {
	mockRepo := &MockGameRepository{}
	mockUsers := &MockUserFinder{}
	mockScores := &MockScoreKeeper{}
	return NewGameService(mockRepo, mockUsers, mockScores), mockRepo, mockUsers, mockScores
}

// pinShipLocation makes new games deterministic for the duration of a test.
func pinShipLocation(t *testing.T, cell int) {
	orig := randomShipLocation
	randomShipLocation = func() int { return cell }
	t.Cleanup(func() { randomShipLocation = orig })
}

func openGame(key string, ship, remaining, allowed int, guesses []int) *Game {
	return &Game{
		Key:               key,
		Owner:             "alice",
		ShipLocation:      ship,
		AttemptsAllowed:   allowed,
		AttemptsRemaining: remaining,
		Guesses:           guesses,
		GameOver:          false,
	}
}

func TestGameService_Create(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()
	pinShipLocation(t, 13)

	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	game := openGame("abcd1234", 13, 3, 3, []int{})
	mockRepo.On("CreateGame", "alice", 13, 3).Return(game, nil)

	resp, err := service.Create(&NewGameRequest{UserName: "alice", Attempts: 3})
	assert.NoError(t, err)
	assert.Equal(t, "abcd1234", resp.Key)
	assert.Equal(t, "alice", resp.UserName)
	assert.Equal(t, 3, resp.AttemptsRemaining)
	assert.Empty(t, resp.Guesses)
	assert.False(t, resp.GameOver)
	assert.Equal(t, "Good luck playing Battleship!", resp.Message)
	mockRepo.AssertExpectations(t)
}

func TestGameService_Create_DefaultAttempts(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()
	pinShipLocation(t, 13)

	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	game := openGame("abcd1234", 13, 5, 5, []int{})
	mockRepo.On("CreateGame", "alice", 13, 5).Return(game, nil)

	resp, err := service.Create(&NewGameRequest{UserName: "alice"})
	assert.NoError(t, err)
	assert.Equal(t, 5, resp.AttemptsRemaining)
	mockRepo.AssertExpectations(t)
}

func TestGameService_Create_AttemptsOutOfRange(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	for _, attempts := range []int{-1, 26, 100} {
		resp, err := service.Create(&NewGameRequest{UserName: "alice", Attempts: attempts})
		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 25")
	}
	mockRepo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_Create_UnknownUser(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()

	mockUsers.On("FindByName", "ghost").Return(nil, apperrors.NewAppError(404, "A user with that name does not exist", nil))

	resp, err := service.Create(&NewGameRequest{UserName: "ghost", Attempts: 3})
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	mockRepo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_Guess_Win(t *testing.T) {
	service, mockRepo, mockUsers, mockScores := newTestGameService()

	game := openGame("abcd1234", 13, 3, 5, []int{1, 2})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)
	mockRepo.On("SaveGame", mock.MatchedBy(func(g *Game) bool {
		return g.GameOver && g.AttemptsRemaining == 2 && len(g.Guesses) == 3
	})).Return(nil)
	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockScores.On("RecordWin", uint(1)).Return(nil)

	resp, err := service.Guess("abcd1234", 13)
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "You win!", resp.Message)
	assert.Equal(t, "O O S O O", resp.RowC)
	mockScores.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestGameService_Guess_WinOnLastAttempt(t *testing.T) {
	service, mockRepo, mockUsers, mockScores := newTestGameService()

	game := openGame("abcd1234", 13, 1, 3, []int{1, 2})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)
	mockRepo.On("SaveGame", mock.AnythingOfType("*game.Game")).Return(nil)
	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockScores.On("RecordWin", uint(1)).Return(nil)

	resp, err := service.Guess("abcd1234", 13)
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.Equal(t, 0, resp.AttemptsRemaining)
	assert.Equal(t, "You win!", resp.Message)
	mockScores.AssertExpectations(t)
	mockScores.AssertNotCalled(t, "RecordLoss", mock.Anything)
}

func TestGameService_Guess_LossOnExhaustion(t *testing.T) {
	service, mockRepo, mockUsers, mockScores := newTestGameService()

	game := openGame("abcd1234", 13, 1, 1, []int{})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)
	mockRepo.On("SaveGame", mock.MatchedBy(func(g *Game) bool {
		return g.GameOver && g.AttemptsRemaining == 0
	})).Return(nil)
	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockScores.On("RecordLoss", uint(1)).Return(nil)

	resp, err := service.Guess("abcd1234", 7)
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "Game over!", resp.Message)
	mockScores.AssertExpectations(t)
	mockScores.AssertNotCalled(t, "RecordWin", mock.Anything)
}

func TestGameService_Guess_Miss(t *testing.T) {
	service, mockRepo, _, mockScores := newTestGameService()

	game := openGame("abcd1234", 13, 3, 3, []int{})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)
	mockRepo.On("SaveGame", mock.MatchedBy(func(g *Game) bool {
		return !g.GameOver && g.AttemptsRemaining == 2 && g.Guesses[0] == 7
	})).Return(nil)

	resp, err := service.Guess("abcd1234", 7)
	assert.NoError(t, err)
	assert.False(t, resp.GameOver)
	assert.Equal(t, "You Missed!", resp.Message)
	assert.Equal(t, "O X O O O", resp.RowB)
	mockScores.AssertNotCalled(t, "RecordWin", mock.Anything)
	mockScores.AssertNotCalled(t, "RecordLoss", mock.Anything)
}

func TestGameService_Guess_Duplicate(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	game := openGame("abcd1234", 13, 2, 3, []int{7})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)

	resp, err := service.Guess("abcd1234", 7)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Already guessed")
	mockRepo.AssertNotCalled(t, "SaveGame", mock.Anything)
}

func TestGameService_Guess_OutOfRange(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	game := openGame("abcd1234", 13, 2, 3, []int{7})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)

	for _, guess := range []int{0, -3, 26} {
		resp, err := service.Guess("abcd1234", guess)
		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "grid boundaries")
	}
	mockRepo.AssertNotCalled(t, "SaveGame", mock.Anything)
}

func TestGameService_Guess_GameAlreadyOver(t *testing.T) {
	service, mockRepo, _, mockScores := newTestGameService()

	game := openGame("abcd1234", 13, 0, 2, []int{7, 13})
	game.GameOver = true
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)

	resp, err := service.Guess("abcd1234", 5)
	assert.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "Game already over!", resp.Message)
	assert.Len(t, resp.Guesses, 2)
	mockRepo.AssertNotCalled(t, "SaveGame", mock.Anything)
	mockScores.AssertNotCalled(t, "RecordWin", mock.Anything)
	mockScores.AssertNotCalled(t, "RecordLoss", mock.Anything)
}

func TestGameService_Guess_InvalidKey(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	resp, err := service.Guess("short", 5)
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid game key")
	mockRepo.AssertNotCalled(t, "GetGame", mock.Anything)
}

func TestGameService_Cancel(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	game := openGame("abcd1234", 13, 2, 3, []int{7})
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)
	mockRepo.On("DeleteGame", game).Return(nil)

	err := service.Cancel("abcd1234")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGameService_Cancel_AlreadyOver(t *testing.T) {
	service, mockRepo, _, _ := newTestGameService()

	game := openGame("abcd1234", 13, 0, 2, []int{7, 13})
	game.GameOver = true
	mockRepo.On("GetGame", "abcd1234").Return(game, nil)

	err := service.Cancel("abcd1234")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already over")
	mockRepo.AssertNotCalled(t, "DeleteGame", mock.Anything)
}

func TestGameService_ActiveGames_FiltersFinished(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()

	finished := *openGame("ffff0000", 13, 0, 2, []int{7, 13})
	finished.GameOver = true
	open := *openGame("abcd1234", 13, 2, 3, []int{7})

	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockRepo.On("GetUserGames", "alice").Return([]Game{finished, open}, nil)

	items, err := service.ActiveGames("alice")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "abcd1234", items[0].Key)
	assert.Equal(t, "Time to make a move", items[0].Message)
}

func TestGameService_ActiveGames_EmptyIsSuccess(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()

	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockRepo.On("GetUserGames", "alice").Return([]Game{}, nil)

	items, err := service.ActiveGames("alice")
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGameService_ActiveGames_UnknownUser(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()

	mockUsers.On("FindByName", "ghost").Return(nil, apperrors.NewAppError(404, "A user with that name does not exist", nil))

	items, err := service.ActiveGames("ghost")
	assert.Nil(t, items)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetUserGames", mock.Anything)
}

func TestGameService_History_OutcomeMessages(t *testing.T) {
	service, mockRepo, mockUsers, _ := newTestGameService()

	won := *openGame("aaaa1111", 13, 1, 3, []int{7, 13})
	won.GameOver = true
	lost := *openGame("bbbb2222", 13, 0, 2, []int{7, 9})
	lost.GameOver = true
	ongoing := *openGame("cccc3333", 13, 2, 3, []int{7})

	mockUsers.On("FindByName", "alice").Return(&user.User{ID: 1, Name: "alice"}, nil)
	mockRepo.On("GetUserGames", "alice").Return([]Game{won, lost, ongoing}, nil)

	items, err := service.History("alice")
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "You Won!", items[0].Message)
	assert.Equal(t, "You Lost", items[1].Message)
	assert.Equal(t, "Game Not Finished!", items[2].Message)
	assert.Equal(t, 3, items[0].AttemptsAllowed)
	assert.Equal(t, "O O S O O", items[0].RowC)
	assert.Equal(t, "O O O O O", items[1].RowC)
}
