package game

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/davidmtz/battleship-api/internal/apperrors"
	"github.com/davidmtz/battleship-api/internal/user"
	"github.com/davidmtz/battleship-api/pkg/logger"
)

const (
	gameKeyLength   = 8
	defaultAttempts = 5
	maxAttempts     = boardCells
)

// randomShipLocation picks the hidden cell for a new game. Package var so
// tests can pin the location.
var randomShipLocation = func() int {
	return rand.Intn(boardCells) + 1
}

// UserFinder resolves a user name to its record. Satisfied by
// user.UserService.
type UserFinder interface {
	FindByName(name string) (*user.User, error)
}

// ScoreKeeper records the outcome of a finished game on the owner's score.
// Satisfied by score.ScoreService.
type ScoreKeeper interface {
	RecordWin(userID uint) error
	RecordLoss(userID uint) error
}

type GameService struct {
	repo   GameRepository
	users  UserFinder
	scores ScoreKeeper
}

func NewGameService(repo GameRepository, users UserFinder, scores ScoreKeeper) *GameService {
	return &GameService{
		repo:   repo,
		users:  users,
		scores: scores,
	}
}

// Create starts a game for the named user. Attempts defaults to 5 and must
// stay within 1..25 so the ship is always reachable.
func (s *GameService) Create(request *NewGameRequest) (*GameResponse, error) {
	attempts := request.Attempts
	if attempts == 0 {
		attempts = defaultAttempts
	}
	if attempts < 1 || attempts > maxAttempts {
		return nil, apperrors.NewAppError(400, "Attempts must be between 1 and 25", nil)
	}

	u, err := s.users.FindByName(request.UserName)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.CreateGame(u.Name, randomShipLocation(), attempts)
	if err != nil {
		return nil, err
	}

	logger.L().Info("game created",
		zap.String("key", game.Key),
		zap.String("owner", game.Owner),
		zap.Int("attempts", attempts))

	return game.toResponse("Good luck playing Battleship!"), nil
}

// Guess applies one move to a game. A finished game answers with its terminal
// state instead of an error and is never mutated or scored again. The win
// check runs before the exhaustion check, so hitting the ship on the last
// attempt is a win.
func (s *GameService) Guess(key string, guess int) (*GameResponse, error) {
	game, err := s.findGame(key)
	if err != nil {
		return nil, err
	}

	if game.GameOver {
		return game.toResponse("Game already over!"), nil
	}

	if guess < 1 || guess > boardCells {
		return nil, apperrors.NewAppError(400, "Invalid move, outside grid boundaries", nil)
	}

	for _, previous := range game.Guesses {
		if previous == guess {
			return nil, apperrors.NewAppError(409, "Already guessed this number", nil)
		}
	}

	game.Guesses = append(game.Guesses, guess)
	game.AttemptsRemaining--

	switch {
	case guess == game.ShipLocation:
		return s.finishGame(game, true, "You win!")
	case game.AttemptsRemaining == 0:
		return s.finishGame(game, false, "Game over!")
	default:
		if err := s.repo.SaveGame(game); err != nil {
			return nil, err
		}
		return game.toResponse("You Missed!"), nil
	}
}

func (s *GameService) finishGame(game *Game, won bool, message string) (*GameResponse, error) {
	game.GameOver = true
	if err := s.repo.SaveGame(game); err != nil {
		return nil, err
	}

	u, err := s.users.FindByName(game.Owner)
	if err != nil {
		return nil, err
	}

	if won {
		err = s.scores.RecordWin(u.ID)
	} else {
		err = s.scores.RecordLoss(u.ID)
	}
	if err != nil {
		return nil, err
	}

	logger.L().Info("game finished",
		zap.String("key", game.Key),
		zap.String("owner", game.Owner),
		zap.Bool("won", won))

	return game.toResponse(message), nil
}

// Cancel deletes a game in progress. Finished games stay on the record.
func (s *GameService) Cancel(key string) error {
	game, err := s.findGame(key)
	if err != nil {
		return err
	}

	if game.GameOver {
		return apperrors.NewAppError(409, "Game is already over", nil)
	}

	return s.repo.DeleteGame(game)
}

// ActiveGames lists the user's unfinished games. A user with no open games
// gets an empty list, not an error.
func (s *GameService) ActiveGames(userName string) ([]*GameResponse, error) {
	games, err := s.userGames(userName)
	if err != nil {
		return nil, err
	}

	items := []*GameResponse{}
	for i := range games {
		if games[i].GameOver {
			continue
		}
		items = append(items, games[i].toResponse("Time to make a move"))
	}
	return items, nil
}

// History lists every game the user ever played, finished or not.
func (s *GameService) History(userName string) ([]*HistoryResponse, error) {
	games, err := s.userGames(userName)
	if err != nil {
		return nil, err
	}

	items := []*HistoryResponse{}
	for i := range games {
		items = append(items, games[i].toHistoryResponse())
	}
	return items, nil
}

func (s *GameService) userGames(userName string) ([]Game, error) {
	u, err := s.users.FindByName(userName)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserGames(u.Name)
}

// findGame rejects malformed keys before touching the store.
func (s *GameService) findGame(key string) (*Game, error) {
	if len(key) != gameKeyLength {
		return nil, apperrors.NewAppError(404, "Invalid game key", nil)
	}
	return s.repo.GetGame(key)
}
