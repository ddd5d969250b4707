package routes

import (
	"backend/controllers"
	"backend/engine"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(eng *engine.Engine) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())

	user := protected.Group("/user")
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/profile/avatar", controllers.UploadAvatar)
	}

	tracker := protected.Group("/tracker")
	{
		tracker.PUT("/metrics", controllers.UpsertMetric)
		tracker.GET("/metrics", controllers.GetMetric)
		tracker.GET("/metrics/history", controllers.MetricHistory)
	}

	nutrition := protected.Group("/nutrition")
	{
		nutrition.POST("/meals", controllers.LogMeal)
		nutrition.GET("/meals", controllers.ListMeals)
		nutrition.PUT("/meals/:id", controllers.UpdateMeal)
		nutrition.DELETE("/meals/:id", controllers.DeleteMeal)
		nutrition.GET("/totals", controllers.DailyTotals)
		nutrition.POST("/meals/photo-labels", controllers.SuggestFoodLabels)
	}

	mc := controllers.NewMedicationController(eng)
	medications := protected.Group("/medications")
	{
		medications.POST("", mc.Add)
		medications.GET("", mc.List)
		medications.GET("/today", mc.Today)
		medications.PUT("/:id", mc.Update)
		medications.DELETE("/:id", mc.Delete)
	}

	ac := controllers.NewAppointmentController(eng)
	appointments := protected.Group("/appointments")
	{
		appointments.POST("", ac.Add)
		appointments.GET("", ac.List)
		appointments.PUT("/:id", ac.Update)
		appointments.POST("/:id/reminder-sent", ac.MarkReminderSent)
		appointments.DELETE("/:id", ac.Delete)
	}

	content := protected.Group("/content")
	{
		content.GET("/articles", controllers.ListArticles)
		content.GET("/articles/:id", controllers.GetArticle)
		content.GET("/exercises", controllers.ListExercises)
		content.GET("/plans", controllers.ListNutritionPlans)
	}

	sc := controllers.NewSessionController(eng)
	protected.GET("/mental/session/ws", sc.SessionWS)

	dc := controllers.NewDashboardController(eng)
	protected.GET("/dashboard", dc.Today)

	return r
}
