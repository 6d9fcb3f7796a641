package controllers

import (
	"net/http"

	"github.com/iamchrisas/macrotracker-back/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type addReviewRequest struct {
	FoodID    uint   `json:"foodId"`
	Taste     string `json:"taste"`
	Digestion string `json:"digestion"`
	Rate      int    `json:"rate"`
}

type editReviewRequest struct {
	Taste     string `json:"taste"`
	Digestion string `json:"digestion"`
	Rate      int    `json:"rate"`
}

func (ctl *ReviewController) AddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	review, err := ctl.reviews.Add(c.Request.Context(), principalID(c), services.AddReviewInput{
		FoodID:    req.FoodID,
		Taste:     req.Taste,
		Digestion: req.Digestion,
		Rate:      req.Rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (ctl *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := ctl.reviews.List(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctl *ReviewController) EditReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req editReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	review, err := ctl.reviews.Update(c.Request.Context(), principalID(c), id, services.UpdateReviewInput{
		Taste:     req.Taste,
		Digestion: req.Digestion,
		Rate:      req.Rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": review})
}

func (ctl *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.reviews.Delete(c.Request.Context(), principalID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
