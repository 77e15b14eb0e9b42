package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/store"
	"github.com/nrtang/ai-fitness-coach/internal/strava"
	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

func stravaActivity(id int64, name, sportType string) strava.Activity {
	return strava.Activity{
		ID:                 id,
		Athlete:            strava.Athlete{ID: 99},
		Name:               name,
		Type:               "Run",
		SportType:          sportType,
		StartDate:          time.Date(2025, 4, 1, 7, 0, 0, 0, time.UTC),
		Distance:           10000,
		MovingTime:         3600,
		ElapsedTime:        3700,
		TotalElevationGain: 80,
		AverageSpeed:       10000.0 / 3600.0,
		AverageHeartrate:   150,
		HasHeartrate:       true,
	}
}

func TestSyncStoresRunsAndSkipsOtherSports(t *testing.T) {
	activities := []strava.Activity{
		stravaActivity(1, "Morning Run", "Run"),
		stravaActivity(2, "Tempo Tuesday", "Run"),
		{ID: 3, Name: "Evening Ride", Type: "Ride", SportType: "Ride",
			StartDate: time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
			Distance:  30000, MovingTime: 4000, ElapsedTime: 4100},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			json.NewEncoder(w).Encode([]strava.Activity{})
			return
		}
		json.NewEncoder(w).Encode(activities)
	}))
	defer server.Close()

	db := store.NewTestDB(t)
	client := strava.NewClientWithBaseURL(server.Client(), server.URL)
	svc := NewSyncService(client, db)

	result, err := svc.Sync(context.Background(), nil)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if result.ActivitiesFetched != 3 {
		t.Errorf("ActivitiesFetched = %d, want 3", result.ActivitiesFetched)
	}
	if result.WorkoutsStored != 2 {
		t.Errorf("WorkoutsStored = %d, want 2", result.WorkoutsStored)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}

	// Tempo run was classified from its name
	w, err := db.GetWorkout("strava-2")
	if err != nil {
		t.Fatalf("GetWorkout: %v", err)
	}
	if w.RunType != workout.RunTempo {
		t.Errorf("RunType = %q, want tempo", w.RunType)
	}
	if w.Metrics.AverageHeartrate == nil || *w.Metrics.AverageHeartrate != 150 {
		t.Errorf("AverageHeartrate = %v, want 150", w.Metrics.AverageHeartrate)
	}

	// Sync time was recorded
	lastSync, err := db.GetSyncTime(store.SyncKeyLastSync)
	if err != nil {
		t.Fatalf("GetSyncTime: %v", err)
	}
	if lastSync.IsZero() {
		t.Error("last sync time not recorded")
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			json.NewEncoder(w).Encode([]strava.Activity{})
			return
		}
		json.NewEncoder(w).Encode([]strava.Activity{stravaActivity(1, "Morning Run", "Run")})
	}))
	defer server.Close()

	db := store.NewTestDB(t)
	client := strava.NewClientWithBaseURL(server.Client(), server.URL)
	svc := NewSyncService(client, db)

	for i := 0; i < 2; i++ {
		if _, err := svc.Sync(context.Background(), nil); err != nil {
			t.Fatalf("Sync %d: %v", i, err)
		}
	}

	count, err := db.CountWorkouts()
	if err != nil {
		t.Fatalf("CountWorkouts: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after re-sync of the same activity", count)
	}
}

func TestConvertActivityRejectsBadData(t *testing.T) {
	a := stravaActivity(1, "Morning Run", "Run")
	a.Distance = 0

	if _, err := convertActivity(a); err == nil {
		t.Error("expected error for zero-distance activity")
	}
}

func TestConvertActivityOptionalMetrics(t *testing.T) {
	a := stravaActivity(1, "Morning Run", "Run")
	a.HasHeartrate = false
	a.AverageHeartrate = 0
	a.TotalElevationGain = 0

	w, err := convertActivity(a)
	if err != nil {
		t.Fatalf("convertActivity: %v", err)
	}
	if w.Metrics.AverageHeartrate != nil {
		t.Errorf("AverageHeartrate = %v, want nil without HR data", w.Metrics.AverageHeartrate)
	}
	if w.Metrics.TotalElevationGain != nil {
		t.Errorf("TotalElevationGain = %v, want nil", w.Metrics.TotalElevationGain)
	}
	if w.Source != "strava" {
		t.Errorf("Source = %q, want strava", w.Source)
	}
}
