package trainingload

import (
	"errors"
	"sort"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

// Time constants for the exponentially weighted moving averages.
// These are load-bearing: 42 days gives fitness its six-week memory,
// 7 days gives fatigue its one-week memory, and form is only meaningful
// because the two differ.
const (
	FitnessDays = 42.0
	FatigueDays = 7.0
)

// ErrNoWorkouts is returned when a load query is made over empty history.
// "no data" is a distinct outcome from a zero-load day.
var ErrNoWorkouts = errors.New("no workouts in history")

// DailyScore pairs a calendar date with a stress score
type DailyScore struct {
	Date  time.Time
	Score float64
}

// TrainingLoad is the computed load state for one calendar day
type TrainingLoad struct {
	Date    time.Time
	Score   float64 // stress score accumulated that day (0 on rest days)
	Fitness float64 // CTL, 42-day EWMA
	Fatigue float64 // ATL, 7-day EWMA
	Form    float64 // TSB, fitness - fatigue
}

// Trajectory computes the daily fitness/fatigue/form series from a set of
// per-workout stress scores. The input may be unordered and sparse; the
// output covers every calendar day from the earliest to the latest input
// date with no gaps, in ascending order. Scores landing on the same
// calendar day are summed: two runs in a day stress the athlete as much
// as one combined run. Seed values continue a prior computation window;
// pass zeros for a fresh start.
func Trajectory(scores []DailyScore, seedFitness, seedFatigue float64) []TrainingLoad {
	if len(scores) == 0 {
		return nil
	}

	byDay := make(map[time.Time]float64, len(scores))
	days := make([]time.Time, 0, len(scores))
	for _, s := range scores {
		day := dayOf(s.Date)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] += s.Score
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	start, end := days[0], days[len(days)-1]

	fitness := seedFitness
	fatigue := seedFatigue

	var series []TrainingLoad
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		score := byDay[day] // 0 on days with no workout

		fitness += (score - fitness) / FitnessDays
		fatigue += (score - fatigue) / FatigueDays

		series = append(series, TrainingLoad{
			Date:    day,
			Score:   score,
			Fitness: fitness,
			Fatigue: fatigue,
			Form:    fitness - fatigue,
		})
	}

	return series
}

// History scores every workout and computes the full daily trajectory.
// Thresholds of 0 mean uncalibrated (see Score).
func History(ws []workout.Workout, thresholdPaceMPS, thresholdHeartrate float64) []TrainingLoad {
	if len(ws) == 0 {
		return nil
	}

	scores := make([]DailyScore, 0, len(ws))
	for _, w := range ws {
		scores = append(scores, DailyScore{
			Date:  w.Date,
			Score: Score(w, thresholdPaceMPS, thresholdHeartrate),
		})
	}

	return Trajectory(scores, 0, 0)
}

// Current returns the most recent day's training load from the full
// history, or ErrNoWorkouts when the history is empty.
func Current(ws []workout.Workout, thresholdPaceMPS, thresholdHeartrate float64) (*TrainingLoad, error) {
	series := History(ws, thresholdPaceMPS, thresholdHeartrate)
	if len(series) == 0 {
		return nil, ErrNoWorkouts
	}

	latest := series[len(series)-1]
	return &latest, nil
}

// dayOf truncates a timestamp to its calendar date
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
