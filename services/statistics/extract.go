// Package statistics groups working records and computes the trimmed
// averages, answer tallies and null-last orderings served by the workings
// statistics endpoints. Every function is pure and safe for concurrent use.
package statistics

import "goodjob/models"

// Value returns the numeric value of field on w, or nil when w does not carry
// it. created_at is expressed in Unix milliseconds. estimated_hourly_wage
// falls back to the estimate derived from the reported salary.
func Value(w models.Working, field models.Field) *float64 {
	switch field {
	case models.FieldCreatedAt:
		if w.CreatedAt.IsZero() {
			return nil
		}
		ms := float64(w.CreatedAt.UnixMilli())
		return &ms
	case models.FieldWeekWorkTime:
		return w.WeekWorkTime
	case models.FieldDayPromisedWorkTime:
		return w.DayPromisedWorkTime
	case models.FieldDayRealWorkTime:
		return w.DayRealWorkTime
	case models.FieldOvertimeFrequency:
		return w.OvertimeFrequency
	case models.FieldExperienceInYear:
		return w.ExperienceInYear
	case models.FieldEstimatedHourlyWage:
		if w.EstimatedHourlyWage != nil {
			return w.EstimatedHourlyWage
		}
		return EstimatedHourlyWage(w)
	case models.FieldEstimatedMonthlyWage:
		return w.EstimatedMonthlyWage
	}
	return nil
}

// AnswerOf returns the tri-state answer stored under field, or nil.
func AnswerOf(w models.Working, field models.Field) *models.Answer {
	var a *models.Answer
	switch field {
	case models.FieldHasOvertimeSalary:
		a = w.HasOvertimeSalary
	case models.FieldIsOvertimeSalaryLegal:
		a = w.IsOvertimeSalaryLegal
	case models.FieldHasCompensatoryDayoff:
		a = w.HasCompensatoryDayoff
	}
	if a == nil || !a.Valid() {
		return nil
	}
	return a
}
