package main

import (
	"context"
	"log"

	"backend/apper"
	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/store"
	"backend/utils"
)

func main() {
	config.Load()
	utils.InitS3()

	var st store.Store
	switch config.Backend() {
	case "memory":
		mem := store.NewMemory()
		mem.Latency = config.MockLatency()
		st = mem
	default:
		config.InitDB()
		st = store.NewGorm(config.DB)
	}

	if config.ApperConfigured() {
		client := apper.NewClientFromEnv()
		if err := client.Initialize(context.Background()); err != nil {
			log.Fatalf("Apper initialization failed: %v", err)
		}
		st = store.WithApper(st, client)
	}

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(st)
	if err != nil {
		log.Fatalf("Push service init failed: %v", err)
	}

	authSvc := services.NewAuthService(st)
	userSvc := services.NewUserService(st)
	progressSvc := services.NewProgressService(st)
	metricsSvc := services.NewMetricsService(st, userSvc)
	habitSvc := services.NewHabitService(st)
	planSvc := services.NewPlanService(st, progressSvc)
	challengeSvc := services.NewChallengeService(st, progressSvc)
	notificationSvc := services.NewNotificationService(st, hub, push)
	recommendationSvc := services.NewRecommendationService(st)
	rankingSvc := services.NewRankingService(st)
	photoSvc := services.NewPhotoService(st)
	exportSvc := services.NewExportService(st, userSvc)
	cohortSvc := services.NewCohortService(st)

	r := routes.SetupRouter(routes.Controllers{
		Auth:            controllers.NewAuthController(authSvc),
		Users:           controllers.NewUserController(userSvc),
		Metrics:         controllers.NewMetricsController(metricsSvc),
		Habits:          controllers.NewHabitController(habitSvc, progressSvc),
		Plans:           controllers.NewPlanController(planSvc),
		Challenges:      controllers.NewChallengeController(challengeSvc),
		Progress:        controllers.NewProgressController(progressSvc),
		Ranking:         controllers.NewRankingController(rankingSvc),
		Notifications:   controllers.NewNotificationController(notificationSvc, push),
		Recommendations: controllers.NewRecommendationController(recommendationSvc),
		Photos:          controllers.NewPhotoController(photoSvc),
		Exports:         controllers.NewExportController(exportSvc),
		Cohort:          controllers.NewCohortController(cohortSvc),
		Realtime:        controllers.NewRealtimeController(hub),
	})

	r.Run(":8080")
}
