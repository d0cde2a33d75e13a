package statistics

import "goodjob/models"

// MinTallyMembers is the smallest group whose answer tallies are reported.
const MinTallyMembers = 5

// Tally counts the answers to field among published records. Records that
// did not answer are left out of every bucket. is_overtime_salary_legal only
// counts on records whose has_overtime_salary is "yes".
func Tally(records []models.Working, field models.Field) models.Tally {
	var t models.Tally
	for _, r := range records {
		if !r.IsPublished() {
			continue
		}
		if field == models.FieldIsOvertimeSalaryLegal {
			paid := AnswerOf(r, models.FieldHasOvertimeSalary)
			if paid == nil || *paid != models.AnswerYes {
				continue
			}
		}
		a := AnswerOf(r, field)
		if a == nil {
			continue
		}
		switch *a {
		case models.AnswerYes:
			t.Yes++
		case models.AnswerNo:
			t.No++
		case models.AnswerDontKnow:
			t.DontKnow++
		}
	}
	return t
}

// TallyIfEnough is Tally for groups of at least MinTallyMembers members and
// nil otherwise.
func TallyIfEnough(members []models.Working, field models.Field) *models.Tally {
	if len(members) < MinTallyMembers {
		return nil
	}
	t := Tally(members, field)
	return &t
}
