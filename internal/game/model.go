package game

// Game is one playthrough: a hidden ship cell, the guess history and the
// remaining attempts. Stored as JSON in redis under an 8-character key.
type Game struct {
	Key               string `json:"key"`
	Owner             string `json:"owner"`
	ShipLocation      int    `json:"ship_location"`
	AttemptsAllowed   int    `json:"attempts_allowed"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	Guesses           []int  `json:"guesses"`
	GameOver          bool   `json:"game_over"`
	CreatedAt         int64  `json:"created_at"`
}

type NewGameRequest struct {
	UserName string `json:"user_name"`
	Attempts int    `json:"attempts"`
}

type MoveRequest struct {
	Guess int `json:"guess"`
}

// GameResponse is the outward state of a game: the board as five row strings
// plus the outcome message for the request that produced it. The ship cell is
// only ever revealed on a finished game.
type GameResponse struct {
	Key               string `json:"key"`
	UserName          string `json:"user_name"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	Guesses           []int  `json:"guesses"`
	RowA              string `json:"row_a"`
	RowB              string `json:"row_b"`
	RowC              string `json:"row_c"`
	RowD              string `json:"row_d"`
	RowE              string `json:"row_e"`
	GameOver          bool   `json:"game_over"`
	Message           string `json:"message"`
}

// HistoryResponse describes a past or ongoing game in a listing. Finished
// games are not addressable, so it carries no key.
type HistoryResponse struct {
	AttemptsRemaining int    `json:"attempts_remaining"`
	AttemptsAllowed   int    `json:"attempts_allowed"`
	Guesses           []int  `json:"guesses"`
	RowA              string `json:"row_a"`
	RowB              string `json:"row_b"`
	RowC              string `json:"row_c"`
	RowD              string `json:"row_d"`
	RowE              string `json:"row_e"`
	GameOver          bool   `json:"game_over"`
	Message           string `json:"message"`
}

func (g *Game) toResponse(message string) *GameResponse {
	rows := renderBoard(g.Guesses, g.GameOver, g.ShipLocation)
	return &GameResponse{
		Key:               g.Key,
		UserName:          g.Owner,
		AttemptsRemaining: g.AttemptsRemaining,
		Guesses:           g.Guesses,
		RowA:              rows[0],
		RowB:              rows[1],
		RowC:              rows[2],
		RowD:              rows[3],
		RowE:              rows[4],
		GameOver:          g.GameOver,
		Message:           message,
	}
}

func (g *Game) toHistoryResponse() *HistoryResponse {
	rows := renderBoard(g.Guesses, g.GameOver, g.ShipLocation)
	return &HistoryResponse{
		AttemptsRemaining: g.AttemptsRemaining,
		AttemptsAllowed:   g.AttemptsAllowed,
		Guesses:           g.Guesses,
		RowA:              rows[0],
		RowB:              rows[1],
		RowC:              rows[2],
		RowD:              rows[3],
		RowE:              rows[4],
		GameOver:          g.GameOver,
		Message:           g.outcomeMessage(),
	}
}

func (g *Game) shipWasHit() bool {
	for _, guess := range g.Guesses {
		if guess == g.ShipLocation {
			return true
		}
	}
	return false
}

func (g *Game) outcomeMessage() string {
	switch {
	case g.shipWasHit():
		return "You Won!"
	case g.GameOver:
		return "You Lost"
	default:
		return "Game Not Finished!"
	}
}
