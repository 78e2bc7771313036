package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/saadjs/fittrack-cli/internal/model"
)

// LoadSnapshot reads the persisted state. An empty database yields an empty
// snapshot.
func LoadSnapshot(db *sql.DB) (model.Snapshot, error) {
	var snap model.Snapshot

	var (
		payload   sql.NullString
		onboarded int
	)
	err := db.QueryRow(`SELECT payload_json, is_onboarded FROM user_profile WHERE singleton = 1`).Scan(&payload, &onboarded)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return snap, fmt.Errorf("load user profile: %w", err)
	default:
		snap.IsOnboarded = onboarded == 1
		if payload.Valid {
			var p model.UserProfile
			if err := json.Unmarshal([]byte(payload.String), &p); err != nil {
				return snap, fmt.Errorf("decode user profile: %w", err)
			}
			snap.Profile = &p
		}
	}

	var wp model.WorkoutPlan
	ok, err := loadPlan(db, "workout", &wp)
	if err != nil {
		return snap, err
	}
	if ok {
		snap.WorkoutPlan = &wp
	}
	var mp model.MealPlan
	ok, err = loadPlan(db, "meal", &mp)
	if err != nil {
		return snap, err
	}
	if ok {
		snap.MealPlan = &mp
	}

	if snap.WorkoutLogs, err = loadRows[model.WorkoutLog](db, "workout_logs"); err != nil {
		return snap, err
	}
	if snap.MealLogs, err = loadRows[model.MealLog](db, "meal_logs"); err != nil {
		return snap, err
	}
	if snap.WaterLogs, err = loadRows[model.WaterLog](db, "water_logs"); err != nil {
		return snap, err
	}
	if snap.SleepLogs, err = loadRows[model.SleepLog](db, "sleep_logs"); err != nil {
		return snap, err
	}
	if snap.ProgressEntries, err = loadRows[model.Progress](db, "progress_entries"); err != nil {
		return snap, err
	}
	if snap.Reminders, err = loadRows[model.Reminder](db, "reminders"); err != nil {
		return snap, err
	}
	return snap, nil
}

// SaveSnapshot replaces the persisted state with snap in one transaction.
func SaveSnapshot(db *sql.DB, snap model.Snapshot) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	if err := saveSnapshot(tx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

func saveSnapshot(tx *sql.Tx, snap model.Snapshot) error {
	var profile any
	if snap.Profile != nil {
		b, err := json.Marshal(snap.Profile)
		if err != nil {
			return fmt.Errorf("encode user profile: %w", err)
		}
		profile = string(b)
	}
	onboarded := 0
	if snap.IsOnboarded {
		onboarded = 1
	}
	if _, err := tx.Exec(`
INSERT INTO user_profile(singleton, payload_json, is_onboarded, updated_at)
VALUES(1, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(singleton) DO UPDATE SET
  payload_json = excluded.payload_json,
  is_onboarded = excluded.is_onboarded,
  updated_at = CURRENT_TIMESTAMP
`, profile, onboarded); err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}

	if err := savePlan(tx, "workout", snap.WorkoutPlan, snap.WorkoutPlan != nil); err != nil {
		return err
	}
	if err := savePlan(tx, "meal", snap.MealPlan, snap.MealPlan != nil); err != nil {
		return err
	}

	if err := saveRows(tx, "workout_logs", []string{"id", "date"}, snap.WorkoutLogs,
		func(l model.WorkoutLog) []any { return []any{l.ID, l.Date} }); err != nil {
		return err
	}
	if err := saveRows(tx, "meal_logs", []string{"id", "date"}, snap.MealLogs,
		func(l model.MealLog) []any { return []any{l.ID, l.Date} }); err != nil {
		return err
	}
	if err := saveRows(tx, "water_logs", []string{"id", "date"}, snap.WaterLogs,
		func(l model.WaterLog) []any { return []any{l.ID, l.Date} }); err != nil {
		return err
	}
	if err := saveRows(tx, "sleep_logs", []string{"id", "date"}, snap.SleepLogs,
		func(l model.SleepLog) []any { return []any{l.ID, l.Date} }); err != nil {
		return err
	}
	if err := saveRows(tx, "progress_entries", []string{"date"}, snap.ProgressEntries,
		func(p model.Progress) []any { return []any{p.Date} }); err != nil {
		return err
	}
	return saveRows(tx, "reminders", []string{"id", "is_active"}, snap.Reminders,
		func(r model.Reminder) []any { return []any{r.ID, r.IsActive} })
}

func loadPlan(db *sql.DB, kind string, dst any) (bool, error) {
	var payload string
	err := db.QueryRow(`SELECT payload_json FROM plans WHERE kind = ?`, kind).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s plan: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return false, fmt.Errorf("decode %s plan: %w", kind, err)
	}
	return true, nil
}

func savePlan(tx *sql.Tx, kind string, plan any, present bool) error {
	if !present {
		if _, err := tx.Exec(`DELETE FROM plans WHERE kind = ?`, kind); err != nil {
			return fmt.Errorf("clear %s plan: %w", kind, err)
		}
		return nil
	}
	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode %s plan: %w", kind, err)
	}
	if _, err := tx.Exec(`
INSERT INTO plans(kind, payload_json, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(kind) DO UPDATE SET payload_json = excluded.payload_json, updated_at = CURRENT_TIMESTAMP
`, kind, string(b)); err != nil {
		return fmt.Errorf("save %s plan: %w", kind, err)
	}
	return nil
}

func loadRows[T any](db *sql.DB, table string) ([]T, error) {
	rows, err := db.Query(`SELECT payload_json FROM ` + table + ` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var item T
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", table, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

func saveRows[T any](tx *sql.Tx, table string, cols []string, items []T, values func(T) []any) error {
	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	query := `INSERT INTO ` + table + `(position, payload_json`
	marks := `?, ?`
	for _, c := range cols {
		query += `, ` + c
		marks += `, ?`
	}
	query += `) VALUES(` + marks + `)`

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s row %d: %w", table, i, err)
		}
		args := append([]any{i, string(b)}, values(item)...)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
	}
	return nil
}
