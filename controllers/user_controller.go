package controllers

import (
	"net/http"

	"github.com/iamchrisas/macrotracker-back/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type editProfileRequest struct {
	Name             string   `json:"name"`
	DailyProteinGoal *float64 `json:"dailyProteinGoal"`
	DailyCarbGoal    *float64 `json:"dailyCarbGoal"`
	DailyFatGoal     *float64 `json:"dailyFatGoal"`
	DailyCalorieGoal *float64 `json:"dailyCalorieGoal"`
	WeightGoal       *float64 `json:"weightGoal"`
	CurrentWeight    *float64 `json:"currentWeight"`
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	user, err := ctl.users.Profile(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) EditProfile(c *gin.Context) {
	var req editProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	user, err := ctl.users.UpdateProfile(c.Request.Context(), principalID(c), services.UpdateProfileInput{
		Name:             req.Name,
		DailyProteinGoal: req.DailyProteinGoal,
		DailyCarbGoal:    req.DailyCarbGoal,
		DailyFatGoal:     req.DailyFatGoal,
		DailyCalorieGoal: req.DailyCalorieGoal,
		WeightGoal:       req.WeightGoal,
		CurrentWeight:    req.CurrentWeight,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}
