package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nrtang/ai-fitness-coach/internal/workout"
)

// Dates are stored as UTC RFC3339 strings so lexicographic
// comparison matches chronological order.
const workoutColumns = `id, date, run_type, distance, moving_time, elapsed_time,
	total_elevation_gain, average_speed, max_speed, average_heartrate, max_heartrate,
	average_cadence, average_watts, max_watts, calories, perceived_effort, notes, source`

// UpsertWorkout inserts or updates a workout
func (db *DB) UpsertWorkout(w *workout.Workout) error {
	_, err := db.Exec(`
		INSERT INTO workouts (
			id, date, run_type, distance, moving_time, elapsed_time,
			total_elevation_gain, average_speed, max_speed, average_heartrate,
			max_heartrate, average_cadence, average_watts, max_watts, calories,
			perceived_effort, notes, source, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			run_type = excluded.run_type,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			elapsed_time = excluded.elapsed_time,
			total_elevation_gain = excluded.total_elevation_gain,
			average_speed = excluded.average_speed,
			max_speed = excluded.max_speed,
			average_heartrate = excluded.average_heartrate,
			max_heartrate = excluded.max_heartrate,
			average_cadence = excluded.average_cadence,
			average_watts = excluded.average_watts,
			max_watts = excluded.max_watts,
			calories = excluded.calories,
			perceived_effort = excluded.perceived_effort,
			notes = excluded.notes,
			source = excluded.source,
			updated_at = CURRENT_TIMESTAMP
	`,
		w.ID, w.Date.UTC().Format(time.RFC3339), string(w.RunType),
		w.Metrics.Distance, w.Metrics.MovingTime, w.Metrics.ElapsedTime,
		w.Metrics.TotalElevationGain, w.Metrics.AverageSpeed, w.Metrics.MaxSpeed,
		w.Metrics.AverageHeartrate, w.Metrics.MaxHeartrate, w.Metrics.AverageCadence,
		w.Metrics.AverageWatts, w.Metrics.MaxWatts, w.Metrics.Calories,
		w.PerceivedEffort, w.Notes, w.Source,
	)
	return err
}

// GetWorkout retrieves a workout by ID
func (db *DB) GetWorkout(id string) (*workout.Workout, error) {
	row := db.QueryRow(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = ?
	`, id)

	w, err := scanWorkout(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkouts returns all workouts ordered by date ascending
func (db *DB) ListWorkouts() ([]workout.Workout, error) {
	rows, err := db.Query(`
		SELECT ` + workoutColumns + `
		FROM workouts
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListWorkoutsSince returns workouts on or after the given time,
// ordered by date ascending
func (db *DB) ListWorkoutsSince(since time.Time) ([]workout.Workout, error) {
	rows, err := db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE date >= ?
		ORDER BY date ASC
	`, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListRecentWorkouts returns the most recent workouts, newest first
func (db *DB) ListRecentWorkouts(limit int) ([]workout.Workout, error) {
	return db.ListWorkoutsPage(limit, 0)
}

// ListWorkoutsPage returns a page of workouts, newest first
func (db *DB) ListWorkoutsPage(limit, offset int) ([]workout.Workout, error) {
	rows, err := db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		ORDER BY date DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// DeleteWorkout removes a workout by ID
func (db *DB) DeleteWorkout(id string) error {
	result, err := db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// CountWorkouts returns the total number of workouts
func (db *DB) CountWorkouts() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&count)
	return count, err
}

// scanWorkout scans a workout from a row or rows scan function
func scanWorkout(scan func(dest ...any) error) (*workout.Workout, error) {
	var w workout.Workout
	var date, runType string

	err := scan(
		&w.ID, &date, &runType,
		&w.Metrics.Distance, &w.Metrics.MovingTime, &w.Metrics.ElapsedTime,
		&w.Metrics.TotalElevationGain, &w.Metrics.AverageSpeed, &w.Metrics.MaxSpeed,
		&w.Metrics.AverageHeartrate, &w.Metrics.MaxHeartrate, &w.Metrics.AverageCadence,
		&w.Metrics.AverageWatts, &w.Metrics.MaxWatts, &w.Metrics.Calories,
		&w.PerceivedEffort, &w.Notes, &w.Source,
	)
	if err != nil {
		return nil, err
	}

	w.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	w.RunType = workout.RunType(runType)

	return &w, nil
}

// scanWorkouts scans multiple workouts from rows
func scanWorkouts(rows *sql.Rows) ([]workout.Workout, error) {
	var workouts []workout.Workout

	for rows.Next() {
		w, err := scanWorkout(rows.Scan)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}

	return workouts, rows.Err()
}
