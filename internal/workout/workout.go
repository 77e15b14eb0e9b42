package workout

import (
	"errors"
	"fmt"
	"time"
)

// Metrics holds the measurements captured during a workout.
// Units match the Strava API: meters, seconds, meters per second, bpm.
// Optional readings are pointers; nil means the device didn't record them.
type Metrics struct {
	Distance           float64  // meters, > 0
	MovingTime         float64  // seconds, > 0
	ElapsedTime        float64  // seconds, > 0
	TotalElevationGain *float64 // meters
	AverageSpeed       *float64 // m/s
	MaxSpeed           *float64 // m/s
	AverageHeartrate   *float64 // bpm
	MaxHeartrate       *int     // bpm
	AverageCadence     *float64 // steps/min
	AverageWatts       *float64
	MaxWatts           *int
	Calories           *float64
}

// NewMetrics validates the required measurements and derives average speed
// from distance and moving time when the device didn't report one.
func NewMetrics(distance, movingTime, elapsedTime float64) (Metrics, error) {
	if distance <= 0 {
		return Metrics{}, fmt.Errorf("distance must be positive, got %v", distance)
	}
	if movingTime <= 0 {
		return Metrics{}, fmt.Errorf("moving time must be positive, got %v", movingTime)
	}
	if elapsedTime <= 0 {
		return Metrics{}, fmt.Errorf("elapsed time must be positive, got %v", elapsedTime)
	}

	avgSpeed := distance / movingTime
	return Metrics{
		Distance:     distance,
		MovingTime:   movingTime,
		ElapsedTime:  elapsedTime,
		AverageSpeed: &avgSpeed,
	}, nil
}

// Speed returns the average speed in m/s, deriving it from distance and
// moving time if no explicit reading exists. Returns 0 only if moving
// time is zero (which NewMetrics forbids).
func (m Metrics) Speed() float64 {
	if m.AverageSpeed != nil {
		return *m.AverageSpeed
	}
	if m.MovingTime > 0 {
		return m.Distance / m.MovingTime
	}
	return 0
}

// Workout is a completed run
type Workout struct {
	ID              string
	Date            time.Time
	RunType         RunType
	Metrics         Metrics
	PerceivedEffort *int // RPE 1-10
	Notes           string
	Source          string // "strava", "manual", ...
}

// New validates and assembles a workout record
func New(id string, date time.Time, runType RunType, metrics Metrics) (*Workout, error) {
	if id == "" {
		return nil, errors.New("workout id is required")
	}
	if date.IsZero() {
		return nil, errors.New("workout date is required")
	}
	if !runType.Valid() {
		return nil, fmt.Errorf("unknown run type %q", runType)
	}
	return &Workout{
		ID:      id,
		Date:    date,
		RunType: runType,
		Metrics: metrics,
	}, nil
}

// WithPerceivedEffort sets the RPE rating, validating the 1-10 scale
func (w *Workout) WithPerceivedEffort(rpe int) error {
	if rpe < 1 || rpe > 10 {
		return fmt.Errorf("perceived effort must be 1-10, got %d", rpe)
	}
	w.PerceivedEffort = &rpe
	return nil
}
