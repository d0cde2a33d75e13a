package statistics

// Paginate returns the page-th slice of limit items, counting pages from 0.
// Pages past the end are empty, never nil.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 0 || limit <= 0 || len(items) == 0 {
		return []T{}
	}
	// Compare pages before multiplying so page*limit cannot overflow.
	if page > (len(items)-1)/limit {
		return []T{}
	}
	start := page * limit
	end := len(items)
	if end-start > limit {
		end = start + limit
	}
	return items[start:end]
}
