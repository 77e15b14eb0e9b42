package store

import "time"

// Auth represents OAuth tokens for Strava API access
type Auth struct {
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
