package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	v1 "github.com/davidmtz/battleship-api/api/v1"
	"github.com/davidmtz/battleship-api/internal/apperrors"
	"github.com/davidmtz/battleship-api/internal/game"
	"github.com/davidmtz/battleship-api/internal/score"
	"github.com/davidmtz/battleship-api/internal/user"
	"github.com/davidmtz/battleship-api/pkg/db"
	"github.com/davidmtz/battleship-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer logger.L().Sync()

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &score.Score{})

	userService := user.NewUserService(user.NewUserRepository(db.DB))
	scoreService := score.NewScoreService(score.NewScoreRepository(db.DB), userService)
	gameService := game.NewGameService(game.NewGameRepository(db.Rdb), userService, scoreService)

	v1.UserService = userService
	v1.ScoreService = scoreService
	v1.GameService = gameService

	e := echo.New()
	e.HTTPErrorHandler = appErrorHandler(e)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterGameRoutes(api.Group("/games"))
	v1.RegisterScoreRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// appErrorHandler maps service-level AppErrors onto their HTTP status before
// falling back to echo's default handling.
func appErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if !c.Response().Committed {
				c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
