package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/iamchrisas/macrotracker-back/models"
	"github.com/iamchrisas/macrotracker-back/repository"

	"github.com/rs/zerolog"
)

// NutrientTotals is a field-wise sum over food entries.
type NutrientTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// GoalRemaining is goal minus intake per field, rounded half away from
// zero. Negative values mean the goal was exceeded; overage is shown,
// not clamped.
type GoalRemaining struct {
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Calories int `json:"calories"`
}

// DailyStats is the response for a single-day query.
type DailyStats struct {
	Totals    NutrientTotals `json:"totals"`
	Goals     NutrientTotals `json:"goals"`
	Remaining GoalRemaining  `json:"remaining"`
}

// DayStats is one row of a multi-day query, keyed by UTC calendar day.
type DayStats struct {
	Date      string         `json:"date"`
	Totals    NutrientTotals `json:"totals"`
	Remaining GoalRemaining  `json:"remaining"`
}

// StatsService aggregates food entries against the owner's goals.
type StatsService struct {
	users  repository.UserRepository
	foods  repository.FoodRepository
	logger zerolog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(users repository.UserRepository, foods repository.FoodRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{
		users:  users,
		foods:  foods,
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

// Daily sums one owner's entries inside the given local day and computes
// what is left of each goal. date defaults to today, tz to UTC+1.
func (s *StatsService) Daily(ctx context.Context, userID uint, date, tz string) (*DailyStats, error) {
	start, end, err := ResolveDayWindow(date, tz)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to fetch user")
		return nil, models.ErrStoreFailure
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	entries, err := s.foods.ListByOwnerInRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).
			Time("from", start).Time("to", end).Msg("failed to list foods in range")
		return nil, models.ErrStoreFailure
	}

	totals := sumFoods(entries)
	goals := goalsOf(user)
	return &DailyStats{
		Totals:    totals,
		Goals:     goals,
		Remaining: remainingFor(goals, totals),
	}, nil
}

// Range sums one owner's entries between two calendar dates (inclusive),
// grouped by the UTC calendar day of each entry's stored timestamp. Days
// without entries produce no row; rows ascend by date.
func (s *StatsService) Range(ctx context.Context, userID uint, startDate, endDate string) ([]DayStats, error) {
	if startDate == "" || endDate == "" {
		return nil, models.ErrInvalidDate
	}
	start, err := time.ParseInLocation(dayLayout, startDate, time.UTC)
	if err != nil {
		return nil, models.ErrInvalidDate
	}
	end, err := time.ParseInLocation(dayLayout, endDate, time.UTC)
	if err != nil {
		return nil, models.ErrInvalidDate
	}
	if end.Before(start) {
		return nil, models.NewDomainError(models.ErrCodeInvalidDate, "End date is before start date")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to fetch user")
		return nil, models.ErrStoreFailure
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	from := start
	to := end.Add(24*time.Hour - time.Millisecond)
	entries, err := s.foods.ListByOwnerInRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).
			Time("from", from).Time("to", to).Msg("failed to list foods in range")
		return nil, models.ErrStoreFailure
	}

	byDay := make(map[string]NutrientTotals)
	for _, e := range entries {
		day := e.Date.UTC().Format(dayLayout)
		t := byDay[day]
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
		t.Calories += e.Calories
		byDay[day] = t
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	goals := goalsOf(user)
	rows := make([]DayStats, 0, len(days))
	for _, day := range days {
		t := byDay[day]
		rows = append(rows, DayStats{
			Date:      day,
			Totals:    t,
			Remaining: remainingFor(goals, t),
		})
	}
	return rows, nil
}

func sumFoods(entries []models.Food) NutrientTotals {
	var t NutrientTotals
	for _, e := range entries {
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
		t.Calories += e.Calories
	}
	return t
}

func goalsOf(u *models.User) NutrientTotals {
	return NutrientTotals{
		Protein:  u.DailyProteinGoal,
		Carbs:    u.DailyCarbGoal,
		Fat:      u.DailyFatGoal,
		Calories: u.DailyCalorieGoal,
	}
}

func remainingFor(goals, totals NutrientTotals) GoalRemaining {
	return GoalRemaining{
		Protein:  int(math.Round(goals.Protein - totals.Protein)),
		Carbs:    int(math.Round(goals.Carbs - totals.Carbs)),
		Fat:      int(math.Round(goals.Fat - totals.Fat)),
		Calories: int(math.Round(goals.Calories - totals.Calories)),
	}
}
