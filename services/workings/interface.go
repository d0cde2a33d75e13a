// File: services/workings/interface.go
package workings

import (
	"context"

	"goodjob/config"
	workingsRepo "goodjob/database/repository/workings"
	"goodjob/models"

	"go.uber.org/zap"
)

// WorkingService serves the workings statistics and listing endpoints.
type WorkingService interface {
	SearchByCompany(ctx context.Context, q GroupQuery) ([]models.CompanyGroup, error)
	SearchByJobTitle(ctx context.Context, q GroupQuery) ([]models.CompanyGroup, error)
	List(ctx context.Context, q ListQuery) (*models.WorkingList, error)
	ListExtremes(ctx context.Context, q ListQuery) (*models.WorkingList, error)
	UpdateStatus(ctx context.Context, userID, workingID, status string) error
}

// Invalidator schedules the eviction of every cached statistics result.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// GroupQuery holds the raw parameters of a group_by company search.
type GroupQuery struct {
	Keyword string
	SortBy  string
	Order   string
}

// ListQuery holds the raw parameters of the flat listings. Empty values take
// the configured defaults.
type ListQuery struct {
	SortBy string
	Order  string
	Page   string
	Limit  string
	Skip   string
}

// Options are the defaults applied to queries that omit a parameter.
type Options struct {
	GroupSortBy    models.Field
	GroupSortOrder models.SortOrder
	PageSize       int
	MaxPageSize    int
}

// OptionsFromConfig reads the query defaults from AppConfig.
func OptionsFromConfig() Options {
	return Options{
		GroupSortBy:    models.Field(config.AppConfig.GroupSortByDefault),
		GroupSortOrder: models.SortOrder(config.AppConfig.GroupSortOrderDefault),
		PageSize:       config.AppConfig.ListPageSize,
		MaxPageSize:    config.AppConfig.ListMaxPageSize,
	}
}

type DefaultWorkingService struct {
	Repo        workingsRepo.WorkingRepository
	Cache       StatsCache
	Invalidator Invalidator
	Options     Options
	Logger      *zap.Logger
}

func (s *DefaultWorkingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

func (s *DefaultWorkingService) cache() StatsCache {
	if s.Cache == nil {
		return NoopStatsCache{}
	}
	return s.Cache
}
