package jobs

import "context"

// ErrNotFound is returned for jobs that do not exist or are owned by another
// user. The two cases are indistinguishable on purpose.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "job not found" }

// Repo persists jobs. Every read, update and delete is scoped by owner.
type Repo interface {
	Create(ctx context.Context, job Job) (Job, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]Job, error)
	GetByID(ctx context.Context, userID, jobID string) (Job, error)
	Update(ctx context.Context, userID, jobID string, fields Fields) (Job, error)
	Delete(ctx context.Context, userID, jobID string) (Job, error)
	CountByStatus(ctx context.Context, userID string) (map[Status]int, error)
	CountByMonth(ctx context.Context, userID string, monthsBack int) ([]MonthCount, error)
}
