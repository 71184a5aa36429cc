package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"easyapply-engine/internal/domain"
)

// InsertApplication is the record sink: one row per application attempt,
// written as soon as the attempt reaches a terminal outcome.
func InsertApplication(ctx context.Context, db *sql.DB, app domain.Application) (int64, error) {
	if app.Title == "" {
		app.Title = "N/A"
	}
	appliedAt := app.AppliedAt
	if appliedAt == "" {
		appliedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := db.ExecContext(ctx, `
INSERT INTO applications(title, company, location, salary, status, url, applied_at, keywords, job_type)
VALUES(?,?,?,?,?,?,?,?,?);`,
		app.Title, app.Company, app.Location, app.Salary, app.Status, app.URL,
		appliedAt, app.Keywords, app.JobType,
	)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

type ListApplicationsOpts struct {
	Page    int
	PerPage int
	Status  string // exact match; empty = all
}

func ListApplications(ctx context.Context, db *sql.DB, opts ListApplicationsOpts) ([]domain.Application, int, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 50
	}

	query := `
SELECT id, title, company, location, salary, status, url, applied_at, keywords, job_type
FROM applications`
	var args []any
	if opts.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, opts.Status)
	}
	query += ` ORDER BY applied_at DESC LIMIT ? OFFSET ?;`
	args = append(args, opts.PerPage, (opts.Page-1)*opts.PerPage)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.Title, &a.Company, &a.Location, &a.Salary,
			&a.Status, &a.URL, &a.AppliedAt, &a.Keywords, &a.JobType); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if opts.Status != "" {
		err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE status = ?;`, opts.Status).Scan(&total)
	} else {
		err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications;`).Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type Stats struct {
	Total      int          `json:"total_applications"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	Daily      []DailyCount `json:"daily"`
}

func ApplicationStats(ctx context.Context, db *sql.DB) (Stats, error) {
	var s Stats

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications;`).Scan(&s.Total); err != nil {
		return s, err
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE status = 'successful';`).Scan(&s.Successful); err != nil {
		return s, err
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE status = 'failed';`).Scan(&s.Failed); err != nil {
		return s, err
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE status LIKE 'skipped:%';`).Scan(&s.Skipped); err != nil {
		return s, err
	}

	rows, err := db.QueryContext(ctx, `
SELECT DATE(applied_at) AS day, COUNT(*) AS count
FROM applications
WHERE applied_at >= DATE('now', '-7 day')
GROUP BY DATE(applied_at)
ORDER BY day DESC;`)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DailyCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return s, err
		}
		s.Daily = append(s.Daily, d)
	}
	return s, rows.Err()
}

// ExportApplications streams every record, newest first, for the CSV export.
func ExportApplications(ctx context.Context, db *sql.DB) ([]domain.Application, error) {
	rows, err := db.QueryContext(ctx, `
SELECT title, company, location, salary, status, url, applied_at
FROM applications
ORDER BY applied_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.Title, &a.Company, &a.Location, &a.Salary, &a.Status, &a.URL, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CleanupOldApplications drops records older than three months; the export is
// the archival path for anything the user wants to keep.
func CleanupOldApplications(db *sql.DB) (deleted int64, err error) {
	res, err := db.Exec(`
DELETE FROM applications
WHERE applied_at < datetime('now', '-3 months');`)
	if err != nil {
		return 0, fmt.Errorf("cleanup old applications: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
