package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"easyapply-engine/internal/domain"
)

// LoadSettings returns the saved settings row, or the defaults when the user
// has never saved anything.
func LoadSettings(ctx context.Context, db *sql.DB) (domain.Settings, error) {
	var (
		s       domain.Settings
		remote  int
		hybrid  int
		onsite  int
		answer  int
		updated string
	)
	err := db.QueryRowContext(ctx, `
SELECT keywords, location, experience_level, salary_min, job_type,
       remote, hybrid, onsite, auto_answer, years_experience, cover_letter, updated_at
FROM settings WHERE id = 1;`).Scan(
		&s.Keywords, &s.Location, &s.ExperienceLevel, &s.SalaryMin, &s.JobType,
		&remote, &hybrid, &onsite, &answer, &s.YearsExperience, &s.CoverLetter, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return s, err
	}
	s.Remote = remote != 0
	s.Hybrid = hybrid != 0
	s.Onsite = onsite != 0
	s.AutoAnswer = answer != 0
	return s, nil
}

func SaveSettings(ctx context.Context, db *sql.DB, s domain.Settings) error {
	b2i := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO settings(id, keywords, location, experience_level, salary_min, job_type,
                     remote, hybrid, onsite, auto_answer, years_experience, cover_letter, updated_at)
VALUES(1,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  keywords=excluded.keywords,
  location=excluded.location,
  experience_level=excluded.experience_level,
  salary_min=excluded.salary_min,
  job_type=excluded.job_type,
  remote=excluded.remote,
  hybrid=excluded.hybrid,
  onsite=excluded.onsite,
  auto_answer=excluded.auto_answer,
  years_experience=excluded.years_experience,
  cover_letter=excluded.cover_letter,
  updated_at=excluded.updated_at;`,
		s.Keywords, s.Location, s.ExperienceLevel, s.SalaryMin, s.JobType,
		b2i(s.Remote), b2i(s.Hybrid), b2i(s.Onsite), b2i(s.AutoAnswer),
		s.YearsExperience, s.CoverLetter, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
