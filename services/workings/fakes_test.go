package workings

import (
	"context"
	"errors"
	"fmt"
	"time"

	workingsRepo "goodjob/database/repository/workings"
	"goodjob/models"
)

var baseTime = time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func working(seq int, jobTitle string, company models.Company) models.Working {
	return models.Working{
		ID:        fmt.Sprintf("%s-%d", jobTitle, seq),
		JobTitle:  jobTitle,
		Company:   company,
		Status:    models.StatusPublished,
		AuthorID:  "author-1",
		CreatedAt: baseTime.Add(time.Duration(seq) * time.Minute),
	}
}

type fakeRepo struct {
	records      []models.Working
	findErr      error
	findCalls    int
	filters      []workingsRepo.WorkingFilter
	statusCalls  int
	lastStatusID string
	lastStatus   string
}

func (r *fakeRepo) FindPublished(_ context.Context, filter workingsRepo.WorkingFilter) ([]models.Working, error) {
	r.findCalls++
	r.filters = append(r.filters, filter)
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]models.Working, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Working, error) {
	for _, w := range r.records {
		if w.ID == id {
			found := w
			return &found, nil
		}
	}
	return nil, workingsRepo.ErrNotFound
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.statusCalls++
	r.lastStatusID = id
	r.lastStatus = status
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Status = status
			return nil
		}
	}
	return workingsRepo.ErrNotFound
}

func (r *fakeRepo) EnsureIndexes(context.Context) error { return nil }

type memoryCache struct {
	entries     map[string][]models.CompanyGroup
	invalidated int
	getErr      error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]models.CompanyGroup)}
}

func (c *memoryCache) GetGroups(_ context.Context, key string) ([]models.CompanyGroup, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	g, ok := c.entries[key]
	return g, ok, nil
}

func (c *memoryCache) SetGroups(_ context.Context, key string, groups []models.CompanyGroup) error {
	c.entries[key] = groups
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.invalidated++
	c.entries = make(map[string][]models.CompanyGroup)
	return nil
}

type fakeInvalidator struct {
	err   error
	calls int
}

func (i *fakeInvalidator) Invalidate(context.Context) error {
	i.calls++
	return i.err
}

var errStoreDown = errors.New("store unavailable")

func newService(repo *fakeRepo) *DefaultWorkingService {
	return &DefaultWorkingService{
		Repo:  repo,
		Cache: newMemoryCache(),
		Options: Options{
			GroupSortBy:    models.FieldWeekWorkTime,
			GroupSortOrder: models.Descending,
			PageSize:       25,
			MaxPageSize:    50,
		},
	}
}
