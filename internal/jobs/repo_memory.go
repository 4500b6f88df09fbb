package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo stores jobs in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Job)}
}

func (r *MemoryRepo) Create(ctx context.Context, job Job) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.byID[job.ID] = job
	return job, nil
}

func (r *MemoryRepo) List(ctx context.Context, userID string, filter ListFilter) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]Job, 0)
	for _, job := range r.byID {
		if job.UserID != userID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(job.JobTitle), search) &&
			!strings.Contains(strings.ToLower(job.Company), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(job.Status) != filter.Status {
			continue
		}
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.byID[jobID]
	if !ok || job.UserID != userID {
		return Job{}, ErrNotFound
	}
	return job, nil
}

func (r *MemoryRepo) Update(ctx context.Context, userID, jobID string, fields Fields) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.byID[jobID]
	if !ok || job.UserID != userID {
		return Job{}, ErrNotFound
	}
	job.JobTitle = fields.JobTitle
	job.Company = fields.Company
	job.Location = fields.Location
	job.Status = fields.Status
	job.Mode = fields.Mode
	job.DateApplied = fields.DateApplied
	job.JobURL = fields.JobURL
	job.UpdatedAt = time.Now().UTC()
	r.byID[jobID] = job
	return job, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.byID[jobID]
	if !ok || job.UserID != userID {
		return Job{}, ErrNotFound
	}
	delete(r.byID, jobID)
	return job, nil
}

func (r *MemoryRepo) CountByStatus(ctx context.Context, userID string) (map[Status]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := zeroStatusCounts()
	for _, job := range r.byID {
		if job.UserID == userID {
			counts[job.Status]++
		}
	}
	return counts, nil
}

func (r *MemoryRepo) CountByMonth(ctx context.Context, userID string, monthsBack int) ([]MonthCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if monthsBack <= 0 {
		monthsBack = 6
	}
	cutoff := time.Now().UTC().AddDate(0, -monthsBack, 0)

	r.mu.RLock()
	defer r.mu.RUnlock()

	type bucket struct {
		month time.Time
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, job := range r.byID {
		if job.UserID != userID || job.DateApplied.Before(cutoff) {
			continue
		}
		month := time.Date(job.DateApplied.Year(), job.DateApplied.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{month: month}
			buckets[month] = b
		}
		b.count++
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].month.Before(ordered[j].month)
	})

	out := make([]MonthCount, 0, len(ordered))
	for _, b := range ordered {
		out = append(out, MonthCount{Month: b.month.Format("Jan 2006"), Count: b.count})
	}
	return out, nil
}
