package routes

import (
	"github.com/iamchrisas/macrotracker-back/controllers"
	"github.com/iamchrisas/macrotracker-back/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter wires all route groups. Everything under /api requires a
// valid bearer token.
func SetupRouter(
	jwtSecret string,
	logger zerolog.Logger,
	authCtl *controllers.AuthController,
	foodCtl *controllers.FoodController,
	reviewCtl *controllers.ReviewController,
	userCtl *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))

	requireAuth := middlewares.AuthMiddleware(jwtSecret)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/verify", requireAuth, authCtl.Verify)
	}

	api := r.Group("/api")
	api.Use(requireAuth)

	foods := api.Group("/foods")
	{
		foods.POST("/add-food", foodCtl.AddFood)
		foods.GET("", foodCtl.ListFoods)
		foods.GET("/daily-stats", foodCtl.DailyStats)
		foods.GET("/weekly-stats", foodCtl.WeeklyStats)
		foods.GET("/:id", foodCtl.GetFood)
		foods.PUT("/edit-food/:id", foodCtl.EditFood)
		foods.DELETE("/delete-food/:id", foodCtl.DeleteFood)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("/add", reviewCtl.AddReview)
		reviews.GET("", reviewCtl.ListReviews)
		reviews.PUT("/edit/:id", reviewCtl.EditReview)
		reviews.DELETE("/delete/:id", reviewCtl.DeleteReview)
	}

	users := api.Group("/users")
	{
		users.GET("/profile", userCtl.GetProfile)
		users.PUT("/edit-profile", userCtl.EditProfile)
	}

	return r
}
