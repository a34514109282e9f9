package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidmtz/battleship-api/internal/game"
)

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.POST("", NewGameHandler)
	g.PUT("/:key", MakeMoveHandler)
	g.DELETE("/:key", CancelGameHandler)
}

func NewGameHandler(c echo.Context) error {
	var req game.NewGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := GameService.Create(&req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func MakeMoveHandler(c echo.Context) error {
	key := c.Param("key")

	var req game.MoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := GameService.Guess(key, req.Guess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func CancelGameHandler(c echo.Context) error {
	key := c.Param("key")

	if err := GameService.Cancel(key); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Game Deleted!",
	})
}

func GetUserGamesHandler(c echo.Context) error {
	name := c.Param("name")

	items, err := GameService.ActiveGames(name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}

func GetGameHistoryHandler(c echo.Context) error {
	name := c.Param("name")

	items, err := GameService.History(name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}
