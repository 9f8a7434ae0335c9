package main

import (
	"context"
	"log"

	"rsvp-service/config"
	"rsvp-service/internal/cache"
	"rsvp-service/internal/database"
	"rsvp-service/internal/handler"
	"rsvp-service/internal/middleware"
	"rsvp-service/internal/queue"
	"rsvp-service/internal/repository"
	"rsvp-service/internal/service"
	"rsvp-service/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	guestRepo := repository.NewGuestRepository(pool)
	transportRepo := repository.NewTransportRepository(pool)

	sessions := cache.NewRedisSessionStore(rdb, cfg.Server.SessionTTL)

	var notifyQueue queue.NotificationQueue
	if cfg.Server.QueueBackend == "memory" {
		notifyQueue = queue.NewNotificationQueue(cfg.Server.QueueBuffer)
	} else {
		notifyQueue, err = queue.NewRedisStreamNotificationQueue(rdb, "", nil)
		if err != nil {
			log.Fatalf("Failed to initialize notification queue: %v", err)
		}
	}

	authService := service.NewAuthService(userRepo, sessions)
	eventService := service.NewEventService(eventRepo, guestRepo)
	guestService := service.NewGuestService(guestRepo, eventRepo, notifyQueue)
	transportService := service.NewTransportService(transportRepo, eventRepo)

	notifier := worker.NewNotificationWorker(notifyQueue, nil)
	if err := notifier.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.Metrics())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(authService)
	handler.NewAuthHandler(authService).RegisterRoutes(router, auth)
	handler.NewEventHandler(eventService).RegisterRoutes(router, auth)
	handler.NewGuestHandler(guestService).RegisterRoutes(router, auth)
	handler.NewWizardHandler(transportService).RegisterRoutes(router, auth)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
