package workings

import (
	"context"
	"errors"
	"fmt"

	workingsRepo "goodjob/database/repository/workings"
	"goodjob/models"
	"goodjob/services/statistics"

	"go.uber.org/zap"
)

const (
	modeCompany  = "company"
	modeJobTitle = "job_title"
)

// SearchByCompany groups the published workings whose company name contains
// the keyword, or whose company id equals it.
func (s *DefaultWorkingService) SearchByCompany(ctx context.Context, q GroupQuery) ([]models.CompanyGroup, error) {
	keyword, err := requireKeyword(modeCompany, q.Keyword)
	if err != nil {
		return nil, err
	}
	return s.searchGroups(ctx, modeCompany, keyword, q, workingsRepo.WorkingFilter{Company: keyword})
}

// SearchByJobTitle groups the published workings whose job title contains the
// keyword by company.
func (s *DefaultWorkingService) SearchByJobTitle(ctx context.Context, q GroupQuery) ([]models.CompanyGroup, error) {
	keyword, err := requireKeyword(modeJobTitle, q.Keyword)
	if err != nil {
		return nil, err
	}
	return s.searchGroups(ctx, modeJobTitle, keyword, q, workingsRepo.WorkingFilter{JobTitle: keyword})
}

func (s *DefaultWorkingService) searchGroups(ctx context.Context, mode, keyword string, q GroupQuery, filter workingsRepo.WorkingFilter) ([]models.CompanyGroup, error) {
	opts, err := s.groupOptions(q)
	if err != nil {
		return nil, err
	}
	logger := s.logger().With(zap.String("mode", mode), zap.String("keyword", keyword))

	key := groupCacheKey(mode, keyword, opts)
	cached, ok, err := s.cache().GetGroups(ctx, key)
	if err != nil {
		logger.Warn("Failed to read cached groups", zap.Error(err))
	} else if ok {
		logger.Debug("Serving cached groups", zap.Int("groups", len(cached)))
		return cached, nil
	}

	records, err := s.Repo.FindPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search by %s: %w", mode, err)
	}
	groups := statistics.GroupByCompany(records, opts)
	logger.Debug("Grouped workings", zap.Int("records", len(records)), zap.Int("groups", len(groups)))

	if err := s.cache().SetGroups(ctx, key, groups); err != nil {
		logger.Warn("Failed to cache groups", zap.Error(err))
	}
	return groups, nil
}

// List returns one page of published workings ordered by the requested
// field, records lacking the field last. With skip set only the central
// values left after trimming the extreme 1% at each end are listed.
func (s *DefaultWorkingService) List(ctx context.Context, q ListQuery) (*models.WorkingList, error) {
	p, err := s.listParams(q)
	if err != nil {
		return nil, err
	}
	sorted, defined, err := s.sortedPublished(ctx, p)
	if err != nil {
		return nil, err
	}

	candidates := sorted
	if p.skip {
		candidates = statistics.Trim(sorted[:defined])
	}
	return &models.WorkingList{
		Total:         len(candidates),
		TimeAndSalary: statistics.Paginate(candidates, p.page, p.limit),
	}, nil
}

// ListExtremes returns one page of the records List drops when skip is set:
// the lowest and highest 1% of the defined values, in the requested order.
func (s *DefaultWorkingService) ListExtremes(ctx context.Context, q ListQuery) (*models.WorkingList, error) {
	p, err := s.listParams(q)
	if err != nil {
		return nil, err
	}
	sorted, defined, err := s.sortedPublished(ctx, p)
	if err != nil {
		return nil, err
	}

	extremes := statistics.Extremes(sorted[:defined])
	return &models.WorkingList{
		Total:         len(extremes),
		TimeAndSalary: statistics.Paginate(extremes, p.page, p.limit),
	}, nil
}

// sortedPublished sorts the whole published collection in process; the
// null-last order and derived wages cannot be expressed as a mongo sort.
func (s *DefaultWorkingService) sortedPublished(ctx context.Context, p listParams) ([]models.Working, int, error) {
	records, err := s.Repo.FindPublished(ctx, workingsRepo.WorkingFilter{})
	if err != nil {
		return nil, 0, fmt.Errorf("list workings: %w", err)
	}
	sorted, defined := statistics.SortByField(records, p.sortBy, p.order)
	return sorted, defined, nil
}

// UpdateStatus publishes or hides a working on behalf of its author and
// evicts the cached statistics.
func (s *DefaultWorkingService) UpdateStatus(ctx context.Context, userID, workingID, status string) error {
	if status != models.StatusPublished && status != models.StatusHidden {
		return NewValidationError("status", "must be published or hidden")
	}

	w, err := s.Repo.GetByID(ctx, workingID)
	if err != nil {
		if errors.Is(err, workingsRepo.ErrNotFound) {
			return ErrWorkingNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}
	if w.AuthorID == "" || w.AuthorID != userID {
		return ErrForbidden
	}
	if w.Status == status {
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, workingID, status); err != nil {
		if errors.Is(err, workingsRepo.ErrNotFound) {
			return ErrWorkingNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}
	s.logger().Info("Working status updated",
		zap.String("workingID", workingID),
		zap.String("status", status),
	)

	s.invalidate(ctx)
	return nil
}

// invalidate hands cache eviction to the background queue, bumping the cache
// generation inline when the task cannot be enqueued.
func (s *DefaultWorkingService) invalidate(ctx context.Context) {
	if s.Invalidator != nil {
		err := s.Invalidator.Invalidate(ctx)
		if err == nil {
			return
		}
		s.logger().Warn("Failed to enqueue stats invalidation, invalidating inline", zap.Error(err))
	}
	if err := s.cache().Invalidate(ctx); err != nil {
		s.logger().Error("Failed to invalidate stats cache", zap.Error(err))
	}
}
