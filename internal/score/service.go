package score

import (
	"github.com/davidmtz/battleship-api/internal/user"
)

// UserFinder resolves a user name to its record. Satisfied by
// user.UserService.
type UserFinder interface {
	FindByName(name string) (*user.User, error)
}

type ScoreService struct {
	repo  ScoreRepository
	users UserFinder
}

func NewScoreService(repo ScoreRepository, users UserFinder) *ScoreService {
	return &ScoreService{repo: repo, users: users}
}

func (s *ScoreService) RecordWin(userID uint) error {
	return s.record(userID, true)
}

func (s *ScoreService) RecordLoss(userID uint) error {
	return s.record(userID, false)
}

// record lazily creates the user's score row, bumps one counter and
// recomputes the percentage before saving.
func (s *ScoreService) record(userID uint, win bool) error {
	sc, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return err
	}

	if win {
		sc.Victories++
	} else {
		sc.Losses++
	}
	sc.Percentage = winPercentage(sc.Victories, sc.Losses)

	return s.repo.Update(sc)
}

// TopByWins returns up to limit users ordered by victories, most first.
func (s *ScoreService) TopByWins(limit int) ([]HighScoreEntry, error) {
	entries, err := s.repo.TopByVictories(limit)
	if err != nil {
		return nil, err
	}

	items := make([]HighScoreEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, HighScoreEntry{
			UserName:  e.UserName,
			Victories: e.Victories,
		})
	}
	return items, nil
}

// TopByPercentage returns up to limit users ordered by win rate, best first.
func (s *ScoreService) TopByPercentage(limit int) ([]RankingEntry, error) {
	entries, err := s.repo.TopByPercentage(limit)
	if err != nil {
		return nil, err
	}

	items := make([]RankingEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, RankingEntry{
			UserName:   e.UserName,
			Percentage: e.Percentage,
		})
	}
	return items, nil
}

// StatsFor returns a user's own counters. A user who never finished a game
// gets a zero-valued response rather than an error.
func (s *ScoreService) StatsFor(userName string) (*UserStatsResponse, error) {
	u, err := s.users.FindByName(userName)
	if err != nil {
		return nil, err
	}

	sc, err := s.repo.FindByUserID(u.ID)
	if err != nil {
		return nil, err
	}

	resp := &UserStatsResponse{UserName: u.Name}
	if sc != nil {
		resp.Victories = sc.Victories
		resp.Losses = sc.Losses
		resp.Percentage = sc.Percentage
	}
	return resp, nil
}

func winPercentage(victories, losses float64) float64 {
	total := victories + losses
	if total == 0 {
		return 0
	}
	return victories / total
}
