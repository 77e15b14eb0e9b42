package tui

import (
	"github.com/nrtang/ai-fitness-coach/internal/config"
	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

// Units formats distances and paces per the user's display preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the preferred unit
func (u Units) FormatDistance(meters float64) string {
	return workout.FormatDistance(meters, u.IsMiles())
}

// FormatPace formats a speed in m/s as a pace string
func (u Units) FormatPace(speedMPS float64) string {
	if speedMPS <= 0 {
		return "-"
	}
	return workout.FormatPace(speedMPS, u.cfg.PaceUnit == "min/mi")
}

// FormatDuration formats seconds as H:MM:SS, or MM:SS under an hour
func (u Units) FormatDuration(seconds float64) string {
	return workout.FormatDuration(seconds)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// IsMiles returns true if the distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}
