package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/faltula/faltula/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS subjects (
	profile_id TEXT NOT NULL,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	weekly_hours INTEGER NOT NULL,
	color TEXT NOT NULL,
	max_absences INTEGER NOT NULL,
	current_absences INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (profile_id, id)
);
CREATE TABLE IF NOT EXISTS schedule_slots (
	profile_id TEXT NOT NULL,
	id TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	time_slot INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (profile_id, id)
);
CREATE TABLE IF NOT EXISTS absences (
	profile_id TEXT NOT NULL,
	id TEXT NOT NULL,
	date TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (profile_id, id)
);
CREATE TABLE IF NOT EXISTS absence_subjects (
	profile_id TEXT NOT NULL,
	absence_id TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	class_count INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (profile_id, absence_id, subject_id)
);
`

// SQLiteStore persists snapshots in a local SQLite database, one row set per
// profile. Selected when the config path ends in ".db".
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'faltula init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; running it on open covers databases
	// created by older versions.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(profileID string) (models.Snapshot, error) {
	if err := s.open(); err != nil {
		return models.Snapshot{}, err
	}

	snap := models.EmptySnapshot()

	rows, err := s.db.Query(`SELECT id, name, weekly_hours, color, max_absences, current_absences
		FROM subjects WHERE profile_id = ? ORDER BY position`, profileID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load subjects: %w", err)
	}
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.WeeklyHours, &sub.Color, &sub.MaxAbsences, &sub.CurrentAbsences); err != nil {
			rows.Close()
			return models.Snapshot{}, fmt.Errorf("failed to scan subject: %w", err)
		}
		snap.Subjects = append(snap.Subjects, sub)
	}
	if err := rows.Close(); err != nil {
		return models.Snapshot{}, err
	}

	rows, err = s.db.Query(`SELECT id, subject_id, day, time_slot
		FROM schedule_slots WHERE profile_id = ? ORDER BY position`, profileID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	for rows.Next() {
		var slot models.ScheduleSlot
		if err := rows.Scan(&slot.ID, &slot.SubjectID, &slot.Day, &slot.TimeSlot); err != nil {
			rows.Close()
			return models.Snapshot{}, fmt.Errorf("failed to scan schedule slot: %w", err)
		}
		snap.Schedule = append(snap.Schedule, slot)
	}
	if err := rows.Close(); err != nil {
		return models.Snapshot{}, err
	}

	rows, err = s.db.Query(`SELECT id, date FROM absences WHERE profile_id = ? ORDER BY position`, profileID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load absences: %w", err)
	}
	for rows.Next() {
		var abs models.Absence
		if err := rows.Scan(&abs.ID, &abs.Date); err != nil {
			rows.Close()
			return models.Snapshot{}, fmt.Errorf("failed to scan absence: %w", err)
		}
		abs.Subjects = []models.AbsenceSubject{}
		snap.Absences = append(snap.Absences, abs)
	}
	if err := rows.Close(); err != nil {
		return models.Snapshot{}, err
	}

	for i := range snap.Absences {
		rows, err = s.db.Query(`SELECT subject_id, class_count
			FROM absence_subjects WHERE profile_id = ? AND absence_id = ? ORDER BY position`,
			profileID, snap.Absences[i].ID)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to load absence breakdown: %w", err)
		}
		for rows.Next() {
			var entry models.AbsenceSubject
			if err := rows.Scan(&entry.SubjectID, &entry.ClassCount); err != nil {
				rows.Close()
				return models.Snapshot{}, fmt.Errorf("failed to scan absence breakdown: %w", err)
			}
			snap.Absences[i].Subjects = append(snap.Absences[i].Subjects, entry)
		}
		if err := rows.Close(); err != nil {
			return models.Snapshot{}, err
		}
	}

	return snap, nil
}

// Save replaces the profile's rows wholesale inside one transaction, so a
// loaded snapshot always reflects a single consistent state.
func (s *SQLiteStore) Save(profileID string, snap models.Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"subjects", "schedule_slots", "absences", "absence_subjects"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile_id = ?", profileID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, sub := range snap.Subjects {
		if _, err := tx.Exec(`INSERT INTO subjects
			(profile_id, id, name, weekly_hours, color, max_absences, current_absences, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			profileID, sub.ID, sub.Name, sub.WeeklyHours, sub.Color, sub.MaxAbsences, sub.CurrentAbsences, i); err != nil {
			return fmt.Errorf("failed to insert subject: %w", err)
		}
	}
	for i, slot := range snap.Schedule {
		if _, err := tx.Exec(`INSERT INTO schedule_slots
			(profile_id, id, subject_id, day, time_slot, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			profileID, slot.ID, slot.SubjectID, slot.Day, slot.TimeSlot, i); err != nil {
			return fmt.Errorf("failed to insert schedule slot: %w", err)
		}
	}
	for i, abs := range snap.Absences {
		if _, err := tx.Exec(`INSERT INTO absences (profile_id, id, date, position)
			VALUES (?, ?, ?, ?)`, profileID, abs.ID, abs.Date, i); err != nil {
			return fmt.Errorf("failed to insert absence: %w", err)
		}
		for j, entry := range abs.Subjects {
			if _, err := tx.Exec(`INSERT INTO absence_subjects
				(profile_id, absence_id, subject_id, class_count, position)
				VALUES (?, ?, ?, ?, ?)`,
				profileID, abs.ID, entry.SubjectID, entry.ClassCount, j); err != nil {
				return fmt.Errorf("failed to insert absence breakdown: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
