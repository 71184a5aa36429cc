package store

import "database/sql"

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS applications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  salary TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  url TEXT NOT NULL DEFAULT '',
  applied_at TEXT NOT NULL,
  keywords TEXT NOT NULL DEFAULT '',
  job_type TEXT NOT NULL DEFAULT ''
);`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications(applied_at DESC);`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  keywords TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  experience_level TEXT NOT NULL DEFAULT '',
  salary_min INTEGER NOT NULL DEFAULT 0,
  job_type TEXT NOT NULL DEFAULT '',
  remote INTEGER NOT NULL DEFAULT 1,
  hybrid INTEGER NOT NULL DEFAULT 1,
  onsite INTEGER NOT NULL DEFAULT 1,
  auto_answer INTEGER NOT NULL DEFAULT 1,
  years_experience INTEGER NOT NULL DEFAULT 1,
  cover_letter TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL
);`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
