package score

// Score keeps one row of cumulative results per user. Percentage is always
// recomputed from the counters before saving, never read back stale.
type Score struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Victories  float64 `json:"victories"`
	Losses     float64 `json:"losses"`
	Percentage float64 `json:"percentage"`
}

// ScoreEntry is a score row joined with the owning user's name, used by the
// leaderboard and ranking queries.
type ScoreEntry struct {
	UserName   string  `json:"user_name"`
	Victories  float64 `json:"victories"`
	Losses     float64 `json:"losses"`
	Percentage float64 `json:"percentage"`
}

type HighScoreEntry struct {
	UserName  string  `json:"user_name"`
	Victories float64 `json:"total_wins"`
}

type RankingEntry struct {
	UserName   string  `json:"user_name"`
	Percentage float64 `json:"percentage_wins"`
}

type UserStatsResponse struct {
	UserName   string  `json:"user_name"`
	Victories  float64 `json:"victories"`
	Losses     float64 `json:"losses"`
	Percentage float64 `json:"percentage"`
}
