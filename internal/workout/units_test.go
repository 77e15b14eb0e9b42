package workout

import (
	"math"
	"testing"
)

func TestSpeedPaceRoundTrip(t *testing.T) {
	for _, speed := range []float64{2.0, 2.78, 3.5, 4.2} {
		if got := PacePerKmToSpeed(SpeedToPacePerKm(speed)); math.Abs(got-speed) > 1e-9 {
			t.Errorf("km round trip: %v -> %v", speed, got)
		}
		if got := PacePerMileToSpeed(SpeedToPacePerMile(speed)); math.Abs(got-speed) > 1e-9 {
			t.Errorf("mile round trip: %v -> %v", speed, got)
		}
	}
}

func TestSpeedToPacePerKm(t *testing.T) {
	// 3.333 m/s is 5:00/km
	got := SpeedToPacePerKm(1000.0 / 300.0)
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("SpeedToPacePerKm = %v, want 5.0", got)
	}
	if SpeedToPacePerKm(0) != 0 {
		t.Error("zero speed should return 0 pace")
	}
}

func TestFormatPace(t *testing.T) {
	tests := []struct {
		speedMPS float64
		imperial bool
		want     string
	}{
		{1000.0 / 300.0, false, "5:00 /km"},
		{1000.0 / 270.0, false, "4:30 /km"},
		{MetersPerMile / 450.0, true, "7:30 /mi"},
		{0, false, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatPace(tt.speedMPS, tt.imperial); got != tt.want {
			t.Errorf("FormatPace(%v, %v) = %q, want %q", tt.speedMPS, tt.imperial, got, tt.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	if got := FormatDistance(8000, false); got != "8.00 km" {
		t.Errorf("FormatDistance metric = %q", got)
	}
	if got := FormatDistance(MetersPerMile*5, true); got != "5.00 mi" {
		t.Errorf("FormatDistance imperial = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{65, "1:05"},
		{1500, "25:00"},
		{3600, "1:00:00"},
		{7325, "2:02:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
