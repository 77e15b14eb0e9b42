// Package trainingload converts workout history into training stress
// scores and daily fitness/fatigue/form trajectories, following the
// TrainingPeaks CTL/ATL/TSB methodology.
package trainingload

import "github.com/nrtang/ai-fitness-coach/internal/workout"

const (
	// FallbackScorePerHour is the stress assumed for an hour of moving
	// time when neither pace nor heart rate can be calibrated.
	FallbackScorePerHour = 50.0

	// elevationFactor converts vertical gain into equivalent flat
	// distance: 10m of climbing costs about as much as 100m on the flat.
	elevationFactor = 10.0
)

// PaceScore computes a stress score from duration and pace relative to
// threshold pace: hours * IF^2 * 100, where IF = speed / threshold.
// A threshold of 0 (or less) means uncalibrated and falls back to the
// duration-based estimate.
func PaceScore(movingTimeSec, avgSpeedMPS, thresholdPaceMPS float64) float64 {
	if thresholdPaceMPS <= 0 {
		return DurationScore(movingTimeSec)
	}

	intensity := avgSpeedMPS / thresholdPaceMPS
	hours := movingTimeSec / 3600.0
	score := hours * intensity * intensity * 100.0

	return max(0.0, score)
}

// ElevationAdjustedScore computes a pace-based stress score with the
// distance normalized for climbing before the intensity factor is taken.
func ElevationAdjustedScore(movingTimeSec, distanceMeters, elevationGainMeters, thresholdPaceMPS float64) float64 {
	normalized := distanceMeters + elevationGainMeters*elevationFactor

	var normalizedSpeed float64
	if movingTimeSec > 0 {
		normalizedSpeed = normalized / movingTimeSec
	}

	return PaceScore(movingTimeSec, normalizedSpeed, thresholdPaceMPS)
}

// HeartRateScore computes a stress score from duration and average heart
// rate relative to threshold heart rate, same shape as PaceScore.
func HeartRateScore(movingTimeSec, avgHeartrate, thresholdHeartrate float64) float64 {
	if thresholdHeartrate <= 0 {
		return DurationScore(movingTimeSec)
	}

	intensity := avgHeartrate / thresholdHeartrate
	hours := movingTimeSec / 3600.0
	score := hours * intensity * intensity * 100.0

	return max(0.0, score)
}

// DurationScore is the last-resort estimate: a flat 50 points per hour
// of moving time, roughly a moderate effort.
func DurationScore(movingTimeSec float64) float64 {
	return (movingTimeSec / 3600.0) * FallbackScorePerHour
}

// Score computes the stress score for a workout using the richest signal
// available. Thresholds of 0 mean uncalibrated. Priority:
//
//  1. pace with elevation adjustment (threshold pace + speed + elevation reading)
//  2. pace (threshold pace + speed)
//  3. heart rate (threshold HR + average HR)
//  4. duration-only estimate
func Score(w workout.Workout, thresholdPaceMPS, thresholdHeartrate float64) float64 {
	m := w.Metrics

	if thresholdPaceMPS > 0 && m.AverageSpeed != nil && m.TotalElevationGain != nil {
		return ElevationAdjustedScore(m.MovingTime, m.Distance, *m.TotalElevationGain, thresholdPaceMPS)
	}

	if thresholdPaceMPS > 0 && m.AverageSpeed != nil {
		return PaceScore(m.MovingTime, *m.AverageSpeed, thresholdPaceMPS)
	}

	if thresholdHeartrate > 0 && m.AverageHeartrate != nil {
		return HeartRateScore(m.MovingTime, *m.AverageHeartrate, thresholdHeartrate)
	}

	return DurationScore(m.MovingTime)
}
