package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, user_id, job_title, company, location, status, mode, date_applied, job_url, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, job Job) (Job, error) {
	const query = `
INSERT INTO jobs (id, user_id, job_title, company, location, status, mode, date_applied, job_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING ` + jobColumns
	row := r.DB.QueryRowContext(ctx, query,
		job.ID,
		job.UserID,
		job.JobTitle,
		job.Company,
		job.Location,
		string(job.Status),
		string(job.Mode),
		job.DateApplied,
		nullableString(job.JobURL),
	)
	return scanJob(row)
}

func (r *PGRepo) List(ctx context.Context, userID string, filter ListFilter) ([]Job, error) {
	query := `
SELECT ` + jobColumns + `
FROM jobs
WHERE user_id = $1`
	args := []any{userID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += `
  AND (job_title ILIKE $2 OR company ILIKE $2)`
	}
	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += `
  AND status = $` + itoa(len(args))
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, jobID string) (Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1 AND user_id = $2
LIMIT 1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, jobID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) Update(ctx context.Context, userID, jobID string, fields Fields) (Job, error) {
	const query = `
UPDATE jobs
SET job_title = $3, company = $4, location = $5, status = $6, mode = $7,
    date_applied = $8, job_url = $9, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + jobColumns
	job, err := scanJob(r.DB.QueryRowContext(ctx, query,
		jobID,
		userID,
		fields.JobTitle,
		fields.Company,
		fields.Location,
		string(fields.Status),
		string(fields.Mode),
		fields.DateApplied,
		nullableString(fields.JobURL),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, jobID string) (Job, error) {
	const query = `
DELETE FROM jobs
WHERE id = $1 AND user_id = $2
RETURNING ` + jobColumns
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, jobID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) CountByStatus(ctx context.Context, userID string) (map[Status]int, error) {
	const query = `
SELECT status, COUNT(*)
FROM jobs
WHERE user_id = $1
GROUP BY status`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := zeroStatusCounts()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[Status(status)] = count
	}
	return counts, rows.Err()
}

func (r *PGRepo) CountByMonth(ctx context.Context, userID string, monthsBack int) ([]MonthCount, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	cutoff := time.Now().UTC().AddDate(0, -monthsBack, 0)
	const query = `
SELECT date_trunc('month', date_applied) AS month, COUNT(*)
FROM jobs
WHERE user_id = $1 AND date_applied >= $2
GROUP BY month
ORDER BY month ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MonthCount, 0)
	for rows.Next() {
		var month time.Time
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		out = append(out, MonthCount{Month: month.Format("Jan 2006"), Count: count})
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var status string
	var mode string
	var jobURL sql.NullString
	err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.JobTitle,
		&job.Company,
		&job.Location,
		&status,
		&mode,
		&job.DateApplied,
		&jobURL,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	job.Status = Status(status)
	job.Mode = Mode(mode)
	if jobURL.Valid {
		job.JobURL = jobURL.String
	}
	return job, nil
}

func zeroStatusCounts() map[Status]int {
	counts := make(map[Status]int, 6)
	for _, status := range AllStatuses() {
		counts[status] = 0
	}
	return counts
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func itoa(n int) string {
	// Placeholder indexes stay below 10 for every query built here.
	return string(rune('0' + n))
}
