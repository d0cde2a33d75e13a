package statistics

import "goodjob/models"

// GroupOptions selects the ordering of company groups.
type GroupOptions struct {
	SortBy models.Field
	Order  models.SortOrder
}

// Partition is the set of records attributed to one company.
type Partition struct {
	Company models.Company
	Members []models.Working
}

// PartitionByCompany splits published records by company identity, walking
// them in order. Two companies are the same when their ids match; when either
// side has no id their names must match exactly. A record with an id joins the
// group holding that id, else the first id-less group with its name, which
// then takes over the id. A record without an id joins the first group with
// its name. Partitions are returned in order of first appearance.
func PartitionByCompany(records []models.Working) []*Partition {
	var (
		parts      []*Partition
		byID       = make(map[string]*Partition)
		byName     = make(map[string]*Partition)
		idlessName = make(map[string]*Partition)
	)
	for _, r := range records {
		if !r.IsPublished() {
			continue
		}
		c := r.Company

		var p *Partition
		if c.ID != "" {
			if p = byID[c.ID]; p == nil {
				if p = idlessName[c.Name]; p != nil {
					p.Company.ID = c.ID
					byID[c.ID] = p
					delete(idlessName, c.Name)
				}
			}
		} else {
			p = byName[c.Name]
		}

		if p == nil {
			p = &Partition{Company: c}
			parts = append(parts, p)
			if c.ID != "" {
				byID[c.ID] = p
			} else {
				idlessName[c.Name] = p
			}
			if _, seen := byName[c.Name]; !seen {
				byName[c.Name] = p
			}
		}
		p.Members = append(p.Members, r)
	}
	return parts
}

// BuildGroup turns a partition into its response shape: members ordered by
// job title, trimmed averages, and answer tallies for large enough groups.
func BuildGroup(p *Partition) models.CompanyGroup {
	members := make([]models.Working, len(p.Members))
	copy(members, p.Members)
	sortMembers(members)

	return models.CompanyGroup{
		Company:                    p.Company,
		HasOvertimeSalaryCount:     TallyIfEnough(members, models.FieldHasOvertimeSalary),
		IsOvertimeSalaryLegalCount: TallyIfEnough(members, models.FieldIsOvertimeSalaryLegal),
		HasCompensatoryDayoffCount: TallyIfEnough(members, models.FieldHasCompensatoryDayoff),
		TimeAndSalary:              members,
		Average:                    Averages(members),
		Count:                      len(members),
	}
}

// GroupByCompany partitions records by company and returns the groups
// ordered by opts. An empty input yields an empty, non-nil slice.
func GroupByCompany(records []models.Working, opts GroupOptions) []models.CompanyGroup {
	parts := PartitionByCompany(records)
	groups := make([]models.CompanyGroup, 0, len(parts))
	for _, p := range parts {
		groups = append(groups, BuildGroup(p))
	}
	SortGroups(groups, opts.SortBy, opts.Order)
	return groups
}
