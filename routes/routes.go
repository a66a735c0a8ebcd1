package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth            *controllers.AuthController
	Users           *controllers.UserController
	Metrics         *controllers.MetricsController
	Habits          *controllers.HabitController
	Plans           *controllers.PlanController
	Challenges      *controllers.ChallengeController
	Progress        *controllers.ProgressController
	Ranking         *controllers.RankingController
	Notifications   *controllers.NotificationController
	Recommendations *controllers.RecommendationController
	Photos          *controllers.PhotoController
	Exports         *controllers.ExportController
	Cohort          *controllers.CohortController
	Realtime        *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	// Protected participant routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", c.Users.GetProfile)
		api.PUT("/user/profile", c.Users.UpdateProfile)
		api.PUT("/user/notification-preferences", c.Users.UpdateNotificationPreferences)
		api.PUT("/user/consent", c.Users.UpdateConsent)
		api.POST("/user/request-deletion", c.Users.RequestDeletion)

		api.POST("/metrics", c.Metrics.Submit)
		api.GET("/metrics/comparison", c.Metrics.Comparison)
		api.GET("/metrics/:phase", c.Metrics.GetByPhase)

		api.GET("/habits", c.Habits.List)
		api.POST("/habits", c.Habits.Create)
		api.POST("/habits/:id/toggle", c.Habits.Toggle)
		api.DELETE("/habits/:id", c.Habits.Delete)

		api.GET("/plan", c.Plans.List)
		api.GET("/plan/:day", c.Plans.GetDay)
		api.PUT("/plan/:day", c.Plans.UpsertContent)
		api.POST("/plan/:day/section", c.Plans.CompleteSection)

		api.GET("/challenges", c.Challenges.List)
		api.GET("/challenges/mine", c.Challenges.Mine)
		api.POST("/challenges/:id/join", c.Challenges.Join)
		api.POST("/challenges/:id/progress", c.Challenges.RecordProgress)

		api.GET("/progress", c.Progress.Get)

		api.GET("/ranking", c.Ranking.List)
		api.GET("/ranking/me", c.Ranking.Me)

		api.GET("/notifications", c.Notifications.List)
		api.POST("/notifications/:id/read", c.Notifications.MarkRead)
		api.POST("/notifications/devices", c.Notifications.RegisterDevice)
		api.POST("/notifications/devices/toggle", c.Notifications.ToggleDevices)

		api.GET("/recommendations", c.Recommendations.List)

		api.GET("/photos", c.Photos.List)
		api.POST("/photos", c.Photos.Upload)
		api.DELETE("/photos/:id", c.Photos.Delete)

		api.GET("/export/:type", c.Exports.Download)

		api.GET("/ws/notifications", c.Realtime.NotificationsWS)
	}

	// Coach-only routes
	coach := r.Group("/coach")
	coach.Use(middlewares.AuthMiddleware(), middlewares.RequireCoach())
	{
		coach.GET("/cohort/summary", c.Cohort.Summary)
		coach.GET("/cohort/members", c.Cohort.Members)

		coach.POST("/challenges", c.Challenges.Create)
		coach.DELETE("/challenges/:id", c.Challenges.Delete)

		coach.POST("/notifications", c.Notifications.Create)
		coach.POST("/recommendations", c.Recommendations.Create)
		coach.DELETE("/recommendations/:id", c.Recommendations.Delete)

		coach.POST("/ranking/recalculate", c.Ranking.Recalculate)
	}

	return r
}
