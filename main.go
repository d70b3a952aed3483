package main

import (
	"context"
	"log"

	"cinema-api/cmd"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/jobs"
	"cinema-api/internal/usecase"
	"cinema-api/internal/wire"
	"cinema-api/pkg/cache"
	"cinema-api/pkg/database"
	"cinema-api/pkg/storage"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.CreateDatabaseSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to create database schema", zap.Error(err))
	}

	redisClient, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	logger.Info("Redis connected successfully")

	seatCache := cache.NewSeatCache(redisClient, config.Redis.SeatCacheTTLSeconds, logger)

	images, err := storage.NewImageStore(config.Media.Dir)
	if err != nil {
		logger.Fatal("Failed to init image store", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	service := usecase.NewService(db, repos, seatCache, images, config, logger)

	scheduler, err := jobs.NewScheduler(repos.AuthSession, logger)
	if err != nil {
		logger.Fatal("Failed to init scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := wire.Wiring(service, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
