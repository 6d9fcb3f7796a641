package controllers

import (
	"net/http"
	"time"

	"github.com/iamchrisas/macrotracker-back/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
	stats *services.StatsService
}

func NewFoodController(foods *services.FoodService, stats *services.StatsService) *FoodController {
	return &FoodController{foods: foods, stats: stats}
}

type addFoodRequest struct {
	Name        string     `json:"name"`
	Protein     *float64   `json:"protein"`
	Carbs       *float64   `json:"carbs"`
	Fat         *float64   `json:"fat"`
	Calories    *float64   `json:"calories"`
	Date        *time.Time `json:"date"`
	ImageBase64 string     `json:"image_base64"`
}

type editFoodRequest struct {
	Name        string   `json:"name"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Calories    *float64 `json:"calories"`
	ImageBase64 string   `json:"image_base64"`
}

func (ctl *FoodController) AddFood(c *gin.Context) {
	var req addFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	food, err := ctl.foods.Add(c.Request.Context(), principalID(c), services.AddFoodInput{
		Name:        req.Name,
		Protein:     orZero(req.Protein),
		Carbs:       orZero(req.Carbs),
		Fat:         orZero(req.Fat),
		Calories:    orZero(req.Calories),
		Date:        req.Date,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item added successfully", "food": food})
}

func (ctl *FoodController) ListFoods(c *gin.Context) {
	foods, err := ctl.foods.List(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *FoodController) GetFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := ctl.foods.Get(c.Request.Context(), principalID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *FoodController) EditFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req editFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	food, err := ctl.foods.Update(c.Request.Context(), principalID(c), id, services.UpdateFoodInput{
		Name:        req.Name,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Calories:    req.Calories,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully", "updatedFood": food})
}

func (ctl *FoodController) DeleteFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.foods.Delete(c.Request.Context(), principalID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}

// DailyStats is timezone-aware: ?date=YYYY-MM-DD&tz=Europe/Madrid.
func (ctl *FoodController) DailyStats(c *gin.Context) {
	stats, err := ctl.stats.Daily(c.Request.Context(), principalID(c), c.Query("date"), c.Query("tz"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// WeeklyStats groups by UTC calendar day: ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (ctl *FoodController) WeeklyStats(c *gin.Context) {
	rows, err := ctl.stats.Range(c.Request.Context(), principalID(c), c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
