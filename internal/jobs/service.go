package jobs

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobtrail-backend/internal/shared/metrics"
)

// Service wraps the repo with id assignment and owner preconditions.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

var errMissingUser = errors.New("user id is required")

func (s *Service) Create(ctx context.Context, userID string, fields Fields) (Job, error) {
	if strings.TrimSpace(userID) == "" {
		return Job{}, errMissingUser
	}
	job := Job{
		ID:          uuid.NewString(),
		UserID:      userID,
		JobTitle:    fields.JobTitle,
		Company:     fields.Company,
		Location:    fields.Location,
		Status:      fields.Status,
		Mode:        fields.Mode,
		DateApplied: fields.DateApplied,
		JobURL:      fields.JobURL,
	}
	created, err := s.Repo.Create(ctx, job)
	if err != nil {
		return Job{}, err
	}
	metrics.IncJobCreated()
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Job, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errMissingUser
	}
	return s.Repo.List(ctx, userID, filter)
}

func (s *Service) GetByID(ctx context.Context, userID, jobID string) (Job, error) {
	if strings.TrimSpace(userID) == "" {
		return Job{}, errMissingUser
	}
	return s.Repo.GetByID(ctx, userID, jobID)
}

func (s *Service) Update(ctx context.Context, userID, jobID string, fields Fields) (Job, error) {
	if strings.TrimSpace(userID) == "" {
		return Job{}, errMissingUser
	}
	job, err := s.Repo.Update(ctx, userID, jobID, fields)
	if err != nil {
		return Job{}, err
	}
	metrics.IncJobUpdated()
	return job, nil
}

func (s *Service) Delete(ctx context.Context, userID, jobID string) (Job, error) {
	if strings.TrimSpace(userID) == "" {
		return Job{}, errMissingUser
	}
	job, err := s.Repo.Delete(ctx, userID, jobID)
	if err != nil {
		return Job{}, err
	}
	metrics.IncJobDeleted()
	return job, nil
}

func (s *Service) CountByStatus(ctx context.Context, userID string) (map[Status]int, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errMissingUser
	}
	return s.Repo.CountByStatus(ctx, userID)
}

func (s *Service) CountByMonth(ctx context.Context, userID string, monthsBack int) ([]MonthCount, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errMissingUser
	}
	return s.Repo.CountByMonth(ctx, userID, monthsBack)
}
