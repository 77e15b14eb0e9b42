package trainingload

import (
	"math"
	"testing"

	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

func TestEstimateThresholdPace(t *testing.T) {
	t.Run("no workouts", func(t *testing.T) {
		if got := EstimateThresholdPace(nil); got != 0 {
			t.Errorf("EstimateThresholdPace(nil) = %v, want 0", got)
		}
	})

	t.Run("only easy runs", func(t *testing.T) {
		ws := []workout.Workout{
			testWorkout(t, workout.RunEasy, 10000, 3600),
			testWorkout(t, workout.RunLong, 20000, 7200),
		}
		if got := EstimateThresholdPace(ws); got != 0 {
			t.Errorf("EstimateThresholdPace = %v, want 0 with no quality efforts", got)
		}
	})

	t.Run("quality effort too short", func(t *testing.T) {
		// 15-minute tempo doesn't qualify; 20 minutes is the floor
		ws := []workout.Workout{testWorkout(t, workout.RunTempo, 2700, 900)}
		if got := EstimateThresholdPace(ws); got != 0 {
			t.Errorf("EstimateThresholdPace = %v, want 0 for sub-20-minute effort", got)
		}
	})

	t.Run("single qualifying tempo", func(t *testing.T) {
		// 25 minutes at 3.0 m/s: threshold = 3.0 * 0.97
		ws := []workout.Workout{testWorkout(t, workout.RunTempo, 4500, 1500)}
		got := EstimateThresholdPace(ws)
		if math.Abs(got-2.91) > 1e-9 {
			t.Errorf("EstimateThresholdPace = %v, want 2.91", got)
		}
	})

	t.Run("fastest qualifying effort wins", func(t *testing.T) {
		ws := []workout.Workout{
			testWorkout(t, workout.RunTempo, 4500, 1500),     // 3.0 m/s
			testWorkout(t, workout.RunRace, 6000, 1800),      // 3.333 m/s
			testWorkout(t, workout.RunIntervals, 4000, 1400), // 2.857 m/s
		}
		got := EstimateThresholdPace(ws)
		want := (6000.0 / 1800.0) * 0.97
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("EstimateThresholdPace = %v, want %v", got, want)
		}
	})

	t.Run("missing average speed is skipped", func(t *testing.T) {
		w := testWorkout(t, workout.RunTempo, 4500, 1500)
		w.Metrics.AverageSpeed = nil
		if got := EstimateThresholdPace([]workout.Workout{w}); got != 0 {
			t.Errorf("EstimateThresholdPace = %v, want 0 without average speed", got)
		}
	})
}
