package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			athlete_id INTEGER NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Workouts (runs synced from Strava or entered manually)
		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			run_type TEXT NOT NULL,
			distance REAL NOT NULL,
			moving_time REAL NOT NULL,
			elapsed_time REAL NOT NULL,
			total_elevation_gain REAL,
			average_speed REAL,
			max_speed REAL,
			average_heartrate REAL,
			max_heartrate INTEGER,
			average_cadence REAL,
			average_watts REAL,
			max_watts INTEGER,
			calories REAL,
			perceived_effort INTEGER,
			notes TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT 'strava',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_run_type ON workouts(run_type)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
