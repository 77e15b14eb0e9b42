package strava

import "time"

// Activity is an activity summary from /athlete/activities.
// Zero-valued optional metrics mean the device didn't record them;
// HasHeartrate disambiguates heart rate.
type Activity struct {
	ID                 int64     `json:"id"`
	Athlete            Athlete   `json:"athlete"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	SportType          string    `json:"sport_type"`
	StartDate          time.Time `json:"start_date"`
	StartDateLocal     time.Time `json:"start_date_local"`
	Timezone           string    `json:"timezone"`
	Distance           float64   `json:"distance"`             // meters
	MovingTime         int       `json:"moving_time"`          // seconds
	ElapsedTime        int       `json:"elapsed_time"`         // seconds
	TotalElevationGain float64   `json:"total_elevation_gain"` // meters
	AverageSpeed       float64   `json:"average_speed"`        // m/s
	MaxSpeed           float64   `json:"max_speed"`            // m/s
	AverageHeartrate   float64   `json:"average_heartrate"`    // bpm
	MaxHeartrate       float64   `json:"max_heartrate"`        // bpm
	AverageCadence     float64   `json:"average_cadence"`      // spm
	AverageWatts       float64   `json:"average_watts"`
	MaxWatts           float64   `json:"max_watts"`
	Calories           float64   `json:"calories"`
	HasHeartrate       bool      `json:"has_heartrate"`
}

// Athlete represents a Strava athlete (minimal info in activity response)
type Athlete struct {
	ID int64 `json:"id"`
}

// IsRun reports whether the activity is a running activity
// (including trail and virtual runs)
func (a Activity) IsRun() bool {
	switch a.SportType {
	case "Run", "TrailRun", "VirtualRun":
		return true
	}
	return a.SportType == "" && a.Type == "Run"
}
