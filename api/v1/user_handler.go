package v1

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davidmtz/battleship-api/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.POST("", CreateUserHandler)
	g.GET("/:name/games", GetUserGamesHandler)
	g.GET("/:name/history", GetGameHistoryHandler)
	g.GET("/:name/stats", GetUserStatsHandler)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func CreateUserHandler(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, err := UserService.Register(req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("User %s created!", u.Name),
	})
}
