package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/store"
	"github.com/nrtang/ai-fitness-coach/internal/strava"
	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

// SyncService pulls runs from Strava into the local store
type SyncService struct {
	client *strava.Client
	db     *store.DB
}

// NewSyncService creates a new sync service
func NewSyncService(client *strava.Client, db *store.DB) *SyncService {
	return &SyncService{client: client, db: db}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Total     int
	Completed int
	Current   string
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	WorkoutsStored    int
	Skipped           int // non-run activities
	Errors            []error
}

// Sync fetches new activities since the last sync and stores the runs.
// Non-run activities are skipped
func (s *SyncService) Sync(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	after, err := s.db.GetSyncTime(store.SyncKeyLastSync)
	if err != nil {
		return result, fmt.Errorf("reading last sync time: %w", err)
	}

	page := 1
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		activities, err := s.client.GetActivities(ctx, after, page, SyncPageSize)
		if err != nil {
			return result, fmt.Errorf("fetching page %d: %w", page, err)
		}

		if len(activities) == 0 {
			break
		}

		result.ActivitiesFetched += len(activities)

		for _, a := range activities {
			if !a.IsRun() {
				result.Skipped++
				continue
			}

			w, err := convertActivity(a)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("activity %d (%s): %w", a.ID, a.Name, err))
				continue
			}
			if err := s.db.UpsertWorkout(w); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("storing workout %s: %w", w.ID, err))
				continue
			}
			result.WorkoutsStored++
		}

		if progress != nil {
			progress <- SyncProgress{
				Total:     result.ActivitiesFetched,
				Completed: result.WorkoutsStored,
			}
		}

		if len(activities) < SyncPageSize {
			break // Last page
		}
		page++
	}

	if err := s.db.SetSyncTime(store.SyncKeyLastSync, time.Now()); err != nil {
		return result, fmt.Errorf("recording sync time: %w", err)
	}

	return result, nil
}

// RateLimitStatus returns the current rate limit status from the client
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

// convertActivity converts a Strava activity into a workout,
// classifying the run type from the activity name
func convertActivity(a strava.Activity) (*workout.Workout, error) {
	metrics, err := workout.NewMetrics(a.Distance, float64(a.MovingTime), float64(a.ElapsedTime))
	if err != nil {
		return nil, err
	}

	if a.AverageSpeed > 0 {
		speed := a.AverageSpeed
		metrics.AverageSpeed = &speed
	}
	if a.TotalElevationGain > 0 {
		gain := a.TotalElevationGain
		metrics.TotalElevationGain = &gain
	}
	if a.MaxSpeed > 0 {
		max := a.MaxSpeed
		metrics.MaxSpeed = &max
	}
	if a.HasHeartrate && a.AverageHeartrate > 0 {
		hr := a.AverageHeartrate
		metrics.AverageHeartrate = &hr
	}
	if a.HasHeartrate && a.MaxHeartrate > 0 {
		maxHR := int(a.MaxHeartrate)
		metrics.MaxHeartrate = &maxHR
	}
	if a.AverageCadence > 0 {
		cad := a.AverageCadence
		metrics.AverageCadence = &cad
	}
	if a.AverageWatts > 0 {
		watts := a.AverageWatts
		metrics.AverageWatts = &watts
	}
	if a.MaxWatts > 0 {
		maxWatts := int(a.MaxWatts)
		metrics.MaxWatts = &maxWatts
	}
	if a.Calories > 0 {
		cal := a.Calories
		metrics.Calories = &cal
	}

	w, err := workout.New(
		"strava-"+strconv.FormatInt(a.ID, 10),
		a.StartDate,
		workout.ClassifyRun(a.Type, a.Name),
		metrics,
	)
	if err != nil {
		return nil, err
	}

	w.Notes = a.Name
	w.Source = "strava"
	return w, nil
}
