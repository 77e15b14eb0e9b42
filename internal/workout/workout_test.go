package workout

import (
	"math"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	t.Run("derives average speed", func(t *testing.T) {
		m, err := NewMetrics(10000, 3600, 3700)
		if err != nil {
			t.Fatalf("NewMetrics() error: %v", err)
		}
		if m.AverageSpeed == nil {
			t.Fatal("AverageSpeed not derived")
		}
		want := 10000.0 / 3600.0
		if math.Abs(*m.AverageSpeed-want) > 1e-9 {
			t.Errorf("AverageSpeed = %v, want %v", *m.AverageSpeed, want)
		}
	})

	tests := []struct {
		name                      string
		distance, moving, elapsed float64
	}{
		{"zero distance", 0, 3600, 3700},
		{"negative distance", -100, 3600, 3700},
		{"zero moving time", 10000, 0, 3700},
		{"zero elapsed time", 10000, 3600, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMetrics(tt.distance, tt.moving, tt.elapsed); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestMetricsSpeed(t *testing.T) {
	explicit := 2.5
	m := Metrics{Distance: 10000, MovingTime: 3600, AverageSpeed: &explicit}
	if got := m.Speed(); got != explicit {
		t.Errorf("Speed() = %v, want explicit reading %v", got, explicit)
	}

	m.AverageSpeed = nil
	want := 10000.0 / 3600.0
	if got := m.Speed(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Speed() = %v, want derived %v", got, want)
	}
}

func TestNew(t *testing.T) {
	date := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)
	metrics, err := NewMetrics(8000, 2400, 2500)
	if err != nil {
		t.Fatalf("NewMetrics() error: %v", err)
	}

	t.Run("valid", func(t *testing.T) {
		w, err := New("strava-123", date, RunTempo, metrics)
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		if w.ID != "strava-123" || w.RunType != RunTempo {
			t.Errorf("unexpected workout: %+v", w)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := New("", date, RunEasy, metrics); err == nil {
			t.Error("expected error for empty id")
		}
	})

	t.Run("zero date", func(t *testing.T) {
		if _, err := New("x", time.Time{}, RunEasy, metrics); err == nil {
			t.Error("expected error for zero date")
		}
	})

	t.Run("unknown run type", func(t *testing.T) {
		if _, err := New("x", date, RunType("fartlek"), metrics); err == nil {
			t.Error("expected error for unknown run type")
		}
	})
}

func TestWithPerceivedEffort(t *testing.T) {
	metrics, _ := NewMetrics(8000, 2400, 2500)
	w, err := New("x", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), RunEasy, metrics)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := w.WithPerceivedEffort(7); err != nil {
		t.Errorf("WithPerceivedEffort(7) error: %v", err)
	}
	if w.PerceivedEffort == nil || *w.PerceivedEffort != 7 {
		t.Errorf("PerceivedEffort = %v, want 7", w.PerceivedEffort)
	}

	for _, rpe := range []int{0, 11, -3} {
		if err := w.WithPerceivedEffort(rpe); err == nil {
			t.Errorf("WithPerceivedEffort(%d) expected error", rpe)
		}
	}
}

func TestRunTypeValid(t *testing.T) {
	for _, rt := range []RunType{RunEasy, RunRecovery, RunLong, RunTempo, RunIntervals, RunHillRepeats, RunProgression, RunRace, RunRest} {
		if !rt.Valid() {
			t.Errorf("%q should be valid", rt)
		}
	}
	if RunType("jog").Valid() {
		t.Error(`"jog" should not be valid`)
	}
}

func TestIsQualityEffort(t *testing.T) {
	quality := map[RunType]bool{
		RunTempo:       true,
		RunRace:        true,
		RunIntervals:   true,
		RunEasy:        false,
		RunLong:        false,
		RunRecovery:    false,
		RunHillRepeats: false,
		RunProgression: false,
		RunRest:        false,
	}
	for rt, want := range quality {
		if got := rt.IsQualityEffort(); got != want {
			t.Errorf("%q.IsQualityEffort() = %v, want %v", rt, got, want)
		}
	}
}
