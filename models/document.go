// File: models/document.go
package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnmarshalBSON decodes a stored working document leniently: every optional
// field that is missing, null or of the wrong type decodes as absent instead
// of failing the whole result set.
func (w *Working) UnmarshalBSON(data []byte) error {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*w = WorkingFromDocument(doc)
	return nil
}

// WorkingFromDocument builds a Working out of a raw document.
func WorkingFromDocument(doc interface{}) Working {
	w := Working{
		ID:                    idAt(doc, "_id"),
		JobTitle:              stringOrEmpty(doc, "job_title"),
		Sector:                stringOrEmpty(doc, "sector"),
		Region:                stringOrEmpty(doc, "region"),
		EmploymentType:        stringOrEmpty(doc, "employment_type"),
		Status:                stringOrEmpty(doc, "status"),
		AuthorID:              idAt(doc, "author_id"),
		CreatedAt:             TimeAt(doc, "created_at"),
		WeekWorkTime:          NumberAt(doc, "week_work_time"),
		DayPromisedWorkTime:   NumberAt(doc, "day_promised_work_time"),
		DayRealWorkTime:       NumberAt(doc, "day_real_work_time"),
		OvertimeFrequency:     NumberAt(doc, "overtime_frequency"),
		ExperienceInYear:      NumberAt(doc, "experience_in_year"),
		EstimatedHourlyWage:   NumberAt(doc, "estimated_hourly_wage"),
		EstimatedMonthlyWage:  NumberAt(doc, "estimated_monthly_wage"),
		HasOvertimeSalary:     AnswerAt(doc, "has_overtime_salary"),
		IsOvertimeSalaryLegal: AnswerAt(doc, "is_overtime_salary_legal"),
		HasCompensatoryDayoff: AnswerAt(doc, "has_compensatory_dayoff"),
	}
	w.Company = Company{
		ID:   idAt(doc, "company.id"),
		Name: stringOrEmpty(doc, "company.name"),
	}
	if salaryType, ok := StringAt(doc, "salary.type"); ok && validSalaryType(salaryType) {
		w.Salary = &Salary{Type: salaryType, Amount: NumberAt(doc, "salary.amount")}
	}
	year, month := NumberAt(doc, "data_time.year"), NumberAt(doc, "data_time.month")
	if year != nil && month != nil {
		w.DataTime = &DataTime{Year: int(*year), Month: int(*month)}
	}
	return w
}

// Lookup walks a dotted path through nested documents. It returns false when
// any segment is missing or the value is null.
func Lookup(doc interface{}, path string) (interface{}, bool) {
	cur := doc
	for _, key := range strings.Split(path, ".") {
		next, ok := child(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

func child(doc interface{}, key string) (interface{}, bool) {
	switch d := doc.(type) {
	case primitive.M:
		v, ok := d[key]
		return v, ok
	case map[string]interface{}:
		v, ok := d[key]
		return v, ok
	case primitive.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

// NumberAt returns the numeric value at path, or nil when it is absent,
// non-numeric or not finite.
func NumberAt(doc interface{}, path string) *float64 {
	raw, ok := Lookup(doc, path)
	if !ok {
		return nil
	}
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// StringAt returns the string at path. Non-string values are absent.
func StringAt(doc interface{}, path string) (string, bool) {
	raw, ok := Lookup(doc, path)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// AnswerAt returns the tri-state answer at path; anything outside the three
// legal values is absent.
func AnswerAt(doc interface{}, path string) *Answer {
	s, ok := StringAt(doc, path)
	if !ok {
		return nil
	}
	a := Answer(s)
	if !a.Valid() {
		return nil
	}
	return &a
}

// TimeAt returns the timestamp at path or the zero time.
func TimeAt(doc interface{}, path string) time.Time {
	raw, ok := Lookup(doc, path)
	if !ok {
		return time.Time{}
	}
	switch v := raw.(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v.UTC()
	}
	return time.Time{}
}

func idAt(doc interface{}, path string) string {
	raw, ok := Lookup(doc, path)
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		// Whole doubles print without exponent or fraction: 84149961, not 8.4149961e+07.
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func stringOrEmpty(doc interface{}, path string) string {
	s, _ := StringAt(doc, path)
	return s
}

func validSalaryType(t string) bool {
	switch t {
	case SalaryHour, SalaryDay, SalaryMonth, SalaryYear:
		return true
	}
	return false
}
