package service

import (
	"errors"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/config"
	"github.com/nrtang/ai-fitness-coach/internal/store"
	"github.com/nrtang/ai-fitness-coach/internal/trainingload"
	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

// ThresholdSource records where the threshold pace came from
type ThresholdSource string

const (
	ThresholdConfigured ThresholdSource = "configured"
	ThresholdEstimated  ThresholdSource = "estimated"
	ThresholdNone       ThresholdSource = "none"
)

// LoadService answers training-load questions from stored workouts
type LoadService struct {
	db      *store.DB
	athlete config.AthleteConfig
}

// NewLoadService creates a load service with the athlete's calibration
func NewLoadService(db *store.DB, athlete config.AthleteConfig) *LoadService {
	return &LoadService{db: db, athlete: athlete}
}

// DashboardData contains everything the dashboard shows
type DashboardData struct {
	// Current state
	CurrentFitness  float64
	CurrentFatigue  float64
	CurrentForm     float64
	FormDescription string
	HasData         bool

	// Threshold calibration
	ThresholdPace   float64 // m/s, 0 if unavailable
	ThresholdSource ThresholdSource

	// This week
	WeekRunCount int
	WeekDistance float64 // meters
	WeekTime     float64 // seconds
	WeekStress   float64

	// For charts: the recent slice of the daily trajectory
	LoadHistory []trainingload.TrainingLoad

	// Recent workouts, newest first
	RecentWorkouts []workout.Workout
}

// GetDashboardData assembles the dashboard from stored workouts
func (s *LoadService) GetDashboardData() (*DashboardData, error) {
	workouts, err := s.db.ListWorkouts()
	if err != nil {
		return nil, err
	}

	data := &DashboardData{}

	thresholdPace, source := s.resolveThresholdPace(workouts)
	data.ThresholdPace = thresholdPace
	data.ThresholdSource = source

	history := trainingload.History(workouts, thresholdPace, s.athlete.ThresholdHR)
	if len(history) > 0 {
		current := history[len(history)-1]
		data.HasData = true
		data.CurrentFitness = current.Fitness
		data.CurrentFatigue = current.Fatigue
		data.CurrentForm = current.Form
		data.FormDescription = trainingload.InterpretForm(current.Form)

		start := len(history) - LoadChartDays
		if start < 0 {
			start = 0
		}
		data.LoadHistory = history[start:]
	}

	data.WeekRunCount, data.WeekDistance, data.WeekTime, data.WeekStress = s.weekStats(workouts, thresholdPace)

	recent, err := s.db.ListRecentWorkouts(RecentWorkoutsLimit)
	if err != nil {
		return nil, err
	}
	data.RecentWorkouts = recent

	return data, nil
}

// CurrentLoad returns the athlete's training load as of the most
// recent workout day
func (s *LoadService) CurrentLoad() (*trainingload.TrainingLoad, error) {
	workouts, err := s.db.ListWorkouts()
	if err != nil {
		return nil, err
	}

	thresholdPace, _ := s.resolveThresholdPace(workouts)
	return trainingload.Current(workouts, thresholdPace, s.athlete.ThresholdHR)
}

// LoadHistory returns the full daily trajectory
func (s *LoadService) LoadHistory() ([]trainingload.TrainingLoad, error) {
	workouts, err := s.db.ListWorkouts()
	if err != nil {
		return nil, err
	}

	thresholdPace, _ := s.resolveThresholdPace(workouts)
	return trainingload.History(workouts, thresholdPace, s.athlete.ThresholdHR), nil
}

// IsEmpty reports whether any workouts are stored.
// "No data" is different from zero training load
func (s *LoadService) IsEmpty() (bool, error) {
	count, err := s.db.CountWorkouts()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// WorkoutsPage returns a page of workouts for the list screen,
// newest first
func (s *LoadService) WorkoutsPage(limit, offset int) ([]workout.Workout, error) {
	return s.db.ListWorkoutsPage(limit, offset)
}

// WorkoutCount returns the total number of stored workouts
func (s *LoadService) WorkoutCount() (int, error) {
	return s.db.CountWorkouts()
}

// resolveThresholdPace prefers the athlete's configured threshold pace,
// falling back to an estimate from recent quality efforts
func (s *LoadService) resolveThresholdPace(workouts []workout.Workout) (float64, ThresholdSource) {
	if configured := s.athlete.ThresholdPaceSpeed(); configured > 0 {
		return configured, ThresholdConfigured
	}
	if estimated := trainingload.EstimateThresholdPace(workouts); estimated > 0 {
		return estimated, ThresholdEstimated
	}
	return 0, ThresholdNone
}

// weekStats sums run count, distance, time, and stress over the last 7 days
func (s *LoadService) weekStats(workouts []workout.Workout, thresholdPace float64) (count int, distance, movingTime, stress float64) {
	cutoff := time.Now().AddDate(0, 0, -7)

	for _, w := range workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		count++
		distance += w.Metrics.Distance
		movingTime += w.Metrics.MovingTime
		stress += trainingload.Score(w, thresholdPace, s.athlete.ThresholdHR)
	}
	return count, distance, movingTime, stress
}

// IsNoWorkouts reports whether err is the empty-history sentinel
func IsNoWorkouts(err error) bool {
	return errors.Is(err, trainingload.ErrNoWorkouts)
}
