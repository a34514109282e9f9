package score

import (
	"errors"

	"gorm.io/gorm"

	"github.com/davidmtz/battleship-api/internal/apperrors"
)

type ScoreRepository interface {
	GetOrCreate(userID uint) (*Score, error)
	Update(s *Score) error
	FindByUserID(userID uint) (*Score, error)
	TopByVictories(limit int) ([]ScoreEntry, error)
	TopByPercentage(limit int) ([]ScoreEntry, error)
}

type GormScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *GormScoreRepository {
	return &GormScoreRepository{db: db}
}

func (r *GormScoreRepository) GetOrCreate(userID uint) (*Score, error) {
	s := Score{UserID: userID}
	result := r.db.Where(Score{UserID: userID}).FirstOrCreate(&s)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error fetching score", result.Error)
	}
	return &s, nil
}

func (r *GormScoreRepository) Update(s *Score) error {
	if err := r.db.Save(s).Error; err != nil {
		return apperrors.NewAppError(500, "error updating score", err)
	}
	return nil
}

// FindByUserID returns (nil, nil) when the user has no score yet.
func (r *GormScoreRepository) FindByUserID(userID uint) (*Score, error) {
	var s Score
	result := r.db.Where("user_id = ?", userID).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "error fetching score", result.Error)
	}
	return &s, nil
}

// The top queries order explicitly and break ties on the user name so that
// repeated calls return the same rows in the same positions.

func (r *GormScoreRepository) TopByVictories(limit int) ([]ScoreEntry, error) {
	return r.top("scores.victories DESC, users.name ASC", limit)
}

func (r *GormScoreRepository) TopByPercentage(limit int) ([]ScoreEntry, error) {
	return r.top("scores.percentage DESC, users.name ASC", limit)
}

func (r *GormScoreRepository) top(order string, limit int) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	err := r.db.Model(&Score{}).
		Select("users.name AS user_name, scores.victories, scores.losses, scores.percentage").
		Joins("JOIN users ON users.id = scores.user_id").
		Order(order).
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching scores", err)
	}
	return entries, nil
}
