package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/router"
	analyticshandler "task_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "task_backend/internal/feature/analytics/usecase"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	infradb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
	"task_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB()

	// Redis backs the auth rate limiter only; run without it if unreachable.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without login throttling.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	taskRepo := taskadapters.NewTaskRepository(db)

	// Usecase
	tokenIssuer := jwtmw.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenIssuer)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)
	analyticsH := analyticshandler.NewAnalyticsHandler(analyticsUC)

	// 10 credential attempts per IP per minute
	limiter := ratelimiter.NewRedisLimiter(rdb, 10, time.Minute, "authrl")

	r := router.NewRouter(authH, taskH, analyticsH, userRepo, limiter)

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
