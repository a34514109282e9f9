package game

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/davidmtz/battleship-api/internal/apperrors"
)

var ctx = context.Background()

const (
	gameKeyPrefix   = "game:"
	userGamesPrefix = "user_games:"
)

type GameRepository interface {
	CreateGame(owner string, shipLocation, attempts int) (*Game, error)
	SaveGame(g *Game) error
	GetGame(key string) (*Game, error)
	DeleteGame(g *Game) error
	GetUserGames(owner string) ([]Game, error)
}

type RedisGameRepository struct {
	db *redis.Client
}

func NewGameRepository(db *redis.Client) *RedisGameRepository {
	return &RedisGameRepository{db: db}
}

// CreateGame stores a fresh game under a new 8-character key and indexes it
// in the owner's sorted set, newest first.
func (r *RedisGameRepository) CreateGame(owner string, shipLocation, attempts int) (*Game, error) {
	game := &Game{
		Key:               uuid.New().String()[:gameKeyLength],
		Owner:             owner,
		ShipLocation:      shipLocation,
		AttemptsAllowed:   attempts,
		AttemptsRemaining: attempts,
		Guesses:           []int{},
		GameOver:          false,
		CreatedAt:         time.Now().Unix(),
	}

	if err := r.SaveGame(game); err != nil {
		return nil, err
	}

	member := redis.Z{Score: float64(game.CreatedAt), Member: game.Key}
	if err := r.db.ZAdd(ctx, userGamesPrefix+owner, member).Err(); err != nil {
		return nil, apperrors.NewAppError(500, "Error indexing game", err)
	}

	return game, nil
}

func (r *RedisGameRepository) SaveGame(g *Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing game data", err)
	}

	if err := r.db.Set(ctx, gameKeyPrefix+g.Key, data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving game", err)
	}

	return nil
}

func (r *RedisGameRepository) GetGame(key string) (*Game, error) {
	val, err := r.db.Get(ctx, gameKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, apperrors.NewAppError(404, "Game does not exist", errors.New("game not found"))
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting game", err)
	}

	var game Game
	if err := json.Unmarshal([]byte(val), &game); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling game data", err)
	}

	return &game, nil
}

func (r *RedisGameRepository) DeleteGame(g *Game) error {
	if err := r.db.Del(ctx, gameKeyPrefix+g.Key).Err(); err != nil {
		return apperrors.NewAppError(500, "Error deleting game", err)
	}
	if err := r.db.ZRem(ctx, userGamesPrefix+g.Owner, g.Key).Err(); err != nil {
		return apperrors.NewAppError(500, "Error removing game from index", err)
	}
	return nil
}

// GetUserGames returns the owner's games, newest first. Index entries whose
// record has expired underneath are skipped rather than failing the listing.
func (r *RedisGameRepository) GetUserGames(owner string) ([]Game, error) {
	keys, err := r.db.ZRevRange(ctx, userGamesPrefix+owner, 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error getting game keys", err)
	}

	games := []Game{}
	for _, key := range keys {
		game, err := r.GetGame(key)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == 404 {
				continue
			}
			return nil, err
		}
		games = append(games, *game)
	}

	return games, nil
}
