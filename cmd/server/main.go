package main

import (
	"context"
	"log"

	"anoa.com/wisatapedia/internal/bootstrap"
	"anoa.com/wisatapedia/internal/config"
	"anoa.com/wisatapedia/internal/server"
	"anoa.com/wisatapedia/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unreachable, continuing without cache: %v", err)
			redisClient = nil
		}
	} else {
		log.Println("REDIS_URL not set, reaction caching and rate limiting disabled")
	}

	srv := server.NewServer(db, redisClient, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
