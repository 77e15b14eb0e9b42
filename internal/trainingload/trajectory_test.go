package trainingload

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

var baseDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTrajectoryEmpty(t *testing.T) {
	if got := Trajectory(nil, 0, 0); got != nil {
		t.Errorf("Trajectory(nil) = %v, want nil", got)
	}
}

func TestTrajectorySingleDay(t *testing.T) {
	series := Trajectory([]DailyScore{{Date: baseDate, Score: 100}}, 0, 0)

	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}

	// First-day recurrence from zero seeds: fitness = S/42, fatigue = S/7
	day := series[0]
	if math.Abs(day.Fitness-100.0/42.0) > 1e-9 {
		t.Errorf("Fitness = %v, want %v", day.Fitness, 100.0/42.0)
	}
	if math.Abs(day.Fatigue-100.0/7.0) > 1e-9 {
		t.Errorf("Fatigue = %v, want %v", day.Fatigue, 100.0/7.0)
	}
	if math.Abs(day.Form-(day.Fitness-day.Fatigue)) > 1e-9 {
		t.Errorf("Form = %v, want fitness-fatigue = %v", day.Form, day.Fitness-day.Fatigue)
	}
	if day.Score != 100 {
		t.Errorf("Score = %v, want 100", day.Score)
	}
}

func TestTrajectoryGapFilling(t *testing.T) {
	// Workouts on day 0, 1, and 5; days 2-4 are implicit rest days
	scores := []DailyScore{
		{Date: baseDate, Score: 50},
		{Date: baseDate.AddDate(0, 0, 1), Score: 0},
		{Date: baseDate.AddDate(0, 0, 5), Score: 80},
	}

	series := Trajectory(scores, 0, 0)

	if len(series) != 6 {
		t.Fatalf("expected 6 entries (days 0-5 inclusive), got %d", len(series))
	}

	for i, day := range series {
		wantDate := baseDate.AddDate(0, 0, i)
		if !day.Date.Equal(wantDate) {
			t.Errorf("entry %d date = %v, want %v", i, day.Date, wantDate)
		}
	}

	// Rest days carry score 0
	for i := 1; i <= 4; i++ {
		if series[i].Score != 0 {
			t.Errorf("day %d score = %v, want 0", i, series[i].Score)
		}
	}

	// A zero-score day decays fitness toward 0 by exactly (1 - 1/42)
	wantDay3 := series[2].Fitness * (1 - 1.0/42.0)
	if math.Abs(series[3].Fitness-wantDay3) > 1e-12 {
		t.Errorf("day 3 fitness = %v, want day 2 fitness decayed = %v", series[3].Fitness, wantDay3)
	}
}

func TestTrajectoryUnsortedInput(t *testing.T) {
	scores := []DailyScore{
		{Date: baseDate.AddDate(0, 0, 2), Score: 30},
		{Date: baseDate, Score: 50},
		{Date: baseDate.AddDate(0, 0, 1), Score: 40},
	}

	series := Trajectory(scores, 0, 0)

	if len(series) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i-1].Date.Before(series[i].Date) {
			t.Errorf("entries not strictly ascending at %d: %v then %v", i, series[i-1].Date, series[i].Date)
		}
	}
}

func TestTrajectoryIdempotent(t *testing.T) {
	scores := []DailyScore{
		{Date: baseDate, Score: 50},
		{Date: baseDate.AddDate(0, 0, 3), Score: 75},
		{Date: baseDate.AddDate(0, 0, 9), Score: 120},
	}

	first := Trajectory(scores, 0, 0)
	second := Trajectory(scores, 0, 0)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTrajectorySameDayScoresSum(t *testing.T) {
	// Two workouts on one day stress the athlete like one combined
	// workout: same-day scores sum rather than overwrite
	split := Trajectory([]DailyScore{
		{Date: baseDate, Score: 40},
		{Date: baseDate.Add(8 * time.Hour), Score: 60},
	}, 0, 0)

	combined := Trajectory([]DailyScore{{Date: baseDate, Score: 100}}, 0, 0)

	if len(split) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(split))
	}
	if split[0].Score != 100 {
		t.Errorf("same-day score = %v, want summed 100", split[0].Score)
	}
	if math.Abs(split[0].Fitness-combined[0].Fitness) > 1e-12 {
		t.Errorf("split fitness = %v, want %v", split[0].Fitness, combined[0].Fitness)
	}
}

func TestTrajectorySeeds(t *testing.T) {
	series := Trajectory([]DailyScore{{Date: baseDate, Score: 0}}, 42, 14)

	// A zero-score day from seeded state decays both averages
	wantFitness := 42 + (0-42.0)/42.0
	wantFatigue := 14 + (0-14.0)/7.0

	if math.Abs(series[0].Fitness-wantFitness) > 1e-9 {
		t.Errorf("seeded fitness = %v, want %v", series[0].Fitness, wantFitness)
	}
	if math.Abs(series[0].Fatigue-wantFatigue) > 1e-9 {
		t.Errorf("seeded fatigue = %v, want %v", series[0].Fatigue, wantFatigue)
	}
}

func TestTrajectoryConsistentLoadConverges(t *testing.T) {
	// Constant 100/day for a long time: both averages approach 100,
	// and fatigue gets there much sooner than fitness
	scores := make([]DailyScore, 200)
	for i := range scores {
		scores[i] = DailyScore{Date: baseDate.AddDate(0, 0, i), Score: 100}
	}

	series := Trajectory(scores, 0, 0)

	if len(series) != 200 {
		t.Fatalf("expected 200 entries, got %d", len(series))
	}

	week := series[6]
	if week.Fatigue <= week.Fitness {
		t.Errorf("after a week, fatigue (%v) should lead fitness (%v)", week.Fatigue, week.Fitness)
	}

	last := series[len(series)-1]
	if math.Abs(last.Fitness-100) > 1.0 {
		t.Errorf("fitness after 200 days = %v, want ~100", last.Fitness)
	}
	if math.Abs(last.Fatigue-100) > 0.01 {
		t.Errorf("fatigue after 200 days = %v, want ~100", last.Fatigue)
	}
}

func TestCurrent(t *testing.T) {
	t.Run("empty history is no data, not zero load", func(t *testing.T) {
		_, err := Current(nil, 0, 0)
		if !errors.Is(err, ErrNoWorkouts) {
			t.Errorf("Current(nil) error = %v, want ErrNoWorkouts", err)
		}
	})

	t.Run("returns the most recent day", func(t *testing.T) {
		ws := []workout.Workout{
			testWorkout(t, workout.RunEasy, 8000, 2880),
			testWorkout(t, workout.RunEasy, 10000, 3600),
		}
		ws[0].Date = baseDate
		ws[1].Date = baseDate.AddDate(0, 0, 4)

		current, err := Current(ws, 0, 0)
		if err != nil {
			t.Fatalf("Current() error: %v", err)
		}

		wantDate := baseDate.AddDate(0, 0, 4)
		if !current.Date.Equal(wantDate) {
			t.Errorf("Date = %v, want %v", current.Date, wantDate)
		}

		// Cross-check against the full series
		series := History(ws, 0, 0)
		if *current != series[len(series)-1] {
			t.Errorf("Current() = %+v, want last of History %+v", *current, series[len(series)-1])
		}
	})
}
