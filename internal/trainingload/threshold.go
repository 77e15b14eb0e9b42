package trainingload

import "github.com/nrtang/ai-fitness-coach/internal/workout"

const (
	// minThresholdEffortSec is the shortest sustained effort (20 minutes)
	// that says anything about threshold pace.
	minThresholdEffortSec = 1200.0

	// thresholdPaceFactor discounts the best sustained pace down to an
	// estimated one-hour pace.
	thresholdPaceFactor = 0.97
)

// EstimateThresholdPace estimates functional threshold pace (m/s) from
// the athlete's own history: the fastest average pace held for at least
// 20 minutes in a tempo, race, or interval workout, discounted to 97%.
// Returns 0 when no qualifying workout exists; callers must then fall
// back to heart-rate or duration-based scoring.
func EstimateThresholdPace(ws []workout.Workout) float64 {
	var best float64

	for _, w := range ws {
		if !w.RunType.IsQualityEffort() {
			continue
		}
		if w.Metrics.MovingTime < minThresholdEffortSec {
			continue
		}
		if w.Metrics.AverageSpeed == nil {
			continue
		}
		if *w.Metrics.AverageSpeed > best {
			best = *w.Metrics.AverageSpeed
		}
	}

	if best == 0 {
		return 0
	}

	return best * thresholdPaceFactor
}
