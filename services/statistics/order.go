package statistics

import (
	"sort"

	"goodjob/models"
)

// nullLastLess orders two optional values in the requested direction. A nil
// value sorts after every non-nil value whatever the direction.
func nullLastLess(a, b *float64, order models.SortOrder) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if order == models.Ascending {
		return *a < *b
	}
	return *a > *b
}

// SortByField returns a copy of records ordered by field. Records lacking the
// field follow all records carrying it in both directions; ties keep their
// input order. defined is the number of leading records that carry the field.
func SortByField(records []models.Working, field models.Field, order models.SortOrder) (sorted []models.Working, defined int) {
	type keyed struct {
		value *float64
		rec   models.Working
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{value: Value(r, field), rec: r}
		if items[i].value != nil {
			defined++
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return nullLastLess(items[i].value, items[j].value, order)
	})

	sorted = make([]models.Working, len(items))
	for i, it := range items {
		sorted[i] = it.rec
	}
	return sorted, defined
}

// SortGroups orders groups by their average for field. Groups with no average
// for the field go last in both directions; ties keep their input order.
func SortGroups(groups []models.CompanyGroup, field models.Field, order models.SortOrder) {
	sort.SliceStable(groups, func(i, j int) bool {
		return nullLastLess(groups[i].Average[field], groups[j].Average[field], order)
	})
}

// sortMembers orders a group's members by job title, keeping store order
// between equal titles.
func sortMembers(members []models.Working) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].JobTitle < members[j].JobTitle
	})
}
