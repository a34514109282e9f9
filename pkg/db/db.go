package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/davidmtz/battleship-api/pkg/logger"
)

var DB *gorm.DB
var Rdb *redis.Client

// Init opens the Postgres connection used for users and scores and the Redis
// connection used for game records. Both are required at startup.
func Init() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.L().Fatal("error connecting to database", zap.Error(err))
	}
	redisConnection()
}

func redisConnection() {
	ctx := context.Background()

	var tlsConfig *tls.Config
	if os.Getenv("REDIS_TLS") == "true" {
		tlsConfig = &tls.Config{}
	}

	dbNum := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			logger.L().Fatal("error converting REDIS_DB to int", zap.Error(err))
		}
		dbNum = n
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:      os.Getenv("REDIS_ADDR"),
		Username:  os.Getenv("REDIS_USERNAME"),
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        dbNum,
		TLSConfig: tlsConfig,
	})

	pong, err := Rdb.Ping(ctx).Result()
	if err != nil {
		logger.L().Fatal("redis connection failed", zap.Error(err))
	}
	logger.L().Info("redis connected", zap.String("pong", pong))
}
