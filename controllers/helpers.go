package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/iamchrisas/macrotracker-back/models"

	"github.com/gin-gonic/gin"
)

// principalID returns the caller id resolved by the auth middleware.
func principalID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeValidation,
			Message: "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

func bindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    models.ErrCodeValidation,
		Message: "Invalid request body",
	})
}

// respondError maps a service error onto the HTTP taxonomy. Anything that
// is not a DomainError surfaces as a generic 500; dependency internals
// stay in the logs.
func respondError(c *gin.Context, err error) {
	var derr *models.DomainError
	if errors.As(err, &derr) {
		c.JSON(statusForCode(derr.Code), models.ErrorResponse{
			Code:    derr.Code,
			Message: derr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Code:    models.ErrCodeInternal,
		Message: "Unexpected error",
	})
}

func statusForCode(code string) int {
	switch code {
	case models.ErrCodeValidation, models.ErrCodeInvalidDate:
		return http.StatusBadRequest
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case models.ErrCodeForbidden:
		return http.StatusForbidden
	case models.ErrCodeNotFound:
		return http.StatusNotFound
	case models.ErrCodeDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
