// File: models/fields.go
package models

// Field names a sortable or aggregatable attribute of a working record.
type Field string

const (
	FieldCreatedAt            Field = "created_at"
	FieldWeekWorkTime         Field = "week_work_time"
	FieldDayPromisedWorkTime  Field = "day_promised_work_time"
	FieldDayRealWorkTime      Field = "day_real_work_time"
	FieldOvertimeFrequency    Field = "overtime_frequency"
	FieldExperienceInYear     Field = "experience_in_year"
	FieldEstimatedHourlyWage  Field = "estimated_hourly_wage"
	FieldEstimatedMonthlyWage Field = "estimated_monthly_wage"

	FieldHasOvertimeSalary     Field = "has_overtime_salary"
	FieldIsOvertimeSalaryLegal Field = "is_overtime_salary_legal"
	FieldHasCompensatoryDayoff Field = "has_compensatory_dayoff"
)

// NumericFields are the fields averaged for every company group, in response order.
var NumericFields = []Field{
	FieldWeekWorkTime,
	FieldDayPromisedWorkTime,
	FieldDayRealWorkTime,
	FieldOvertimeFrequency,
	FieldExperienceInYear,
	FieldEstimatedHourlyWage,
	FieldEstimatedMonthlyWage,
}

// AnswerFields are the tri-state fields tallied for company groups.
var AnswerFields = []Field{
	FieldHasOvertimeSalary,
	FieldIsOvertimeSalaryLegal,
	FieldHasCompensatoryDayoff,
}

// IsNumericField reports whether f can be averaged or used as a group sort key.
func IsNumericField(f Field) bool {
	for _, n := range NumericFields {
		if n == f {
			return true
		}
	}
	return false
}

// IsListSortField reports whether f can order the flat workings listing.
func IsListSortField(f Field) bool {
	return f == FieldCreatedAt || IsNumericField(f)
}

// SortOrder is the direction requested for a listing or group ordering.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// Valid reports whether o is one of the two accepted directions.
func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}
