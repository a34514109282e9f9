package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidmtz/battleship-api/internal/score"
)

// leaderboardSize bounds the leaderboard and ranking listings.
const leaderboardSize = 5

var ScoreService *score.ScoreService

func RegisterScoreRoutes(g *echo.Group) {
	g.GET("/leaderboard", GetHighScoresHandler)
	g.GET("/rankings", GetUserRankingsHandler)
}

func GetHighScoresHandler(c echo.Context) error {
	items, err := ScoreService.TopByWins(leaderboardSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}

func GetUserRankingsHandler(c echo.Context) error {
	items, err := ScoreService.TopByPercentage(leaderboardSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}

func GetUserStatsHandler(c echo.Context) error {
	name := c.Param("name")

	stats, err := ScoreService.StatsFor(name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
