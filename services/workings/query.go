package workings

import (
	"fmt"
	"strconv"
	"strings"

	"goodjob/models"
	"goodjob/services/statistics"
)

const (
	defaultPageSize    = 25
	defaultMaxPageSize = 50
)

// listParams is a validated ListQuery.
type listParams struct {
	sortBy models.Field
	order  models.SortOrder
	page   int
	limit  int
	skip   bool
}

func (s *DefaultWorkingService) groupOptions(q GroupQuery) (statistics.GroupOptions, error) {
	opts := statistics.GroupOptions{
		SortBy: s.Options.GroupSortBy,
		Order:  s.Options.GroupSortOrder,
	}
	if opts.SortBy == "" {
		opts.SortBy = models.FieldWeekWorkTime
	}
	if opts.Order == "" {
		opts.Order = models.Descending
	}

	if q.SortBy != "" {
		opts.SortBy = models.Field(q.SortBy)
	}
	if !models.IsNumericField(opts.SortBy) {
		return opts, NewValidationError("group_sort_by", fmt.Sprintf("unknown field %q", opts.SortBy))
	}
	if q.Order != "" {
		opts.Order = models.SortOrder(q.Order)
	}
	if !opts.Order.Valid() {
		return opts, NewValidationError("group_sort_order", "must be ascending or descending")
	}
	return opts, nil
}

func (s *DefaultWorkingService) listParams(q ListQuery) (listParams, error) {
	p := listParams{
		sortBy: models.FieldCreatedAt,
		order:  models.Descending,
		limit:  s.Options.PageSize,
	}
	if p.limit <= 0 {
		p.limit = defaultPageSize
	}
	maxLimit := s.Options.MaxPageSize
	if maxLimit <= 0 {
		maxLimit = defaultMaxPageSize
	}

	if q.SortBy != "" {
		p.sortBy = models.Field(q.SortBy)
	}
	if !models.IsListSortField(p.sortBy) {
		return p, NewValidationError("sort_by", fmt.Sprintf("unknown field %q", p.sortBy))
	}
	if q.Order != "" {
		p.order = models.SortOrder(q.Order)
	}
	if !p.order.Valid() {
		return p, NewValidationError("order", "must be ascending or descending")
	}

	if q.Page != "" {
		page, err := strconv.Atoi(strings.TrimSpace(q.Page))
		if err != nil || page < 0 {
			return p, NewValidationError("page", "must be a non-negative integer")
		}
		p.page = page
	}
	if q.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(q.Limit))
		if err != nil || limit < 1 || limit > maxLimit {
			return p, NewValidationError("limit", fmt.Sprintf("must be an integer between 1 and %d", maxLimit))
		}
		p.limit = limit
	}
	p.skip = q.Skip == "true"
	return p, nil
}

func requireKeyword(field, keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", NewValidationError(field, "is required")
	}
	return keyword, nil
}
