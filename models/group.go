// File: models/group.go
package models

import "encoding/json"

// Average maps a numeric field to its trimmed mean; nil marks a field no
// member reported.
type Average map[Field]*float64

// Tally counts tri-state answers within a group.
type Tally struct {
	Yes      int
	No       int
	DontKnow int
}

// Total is the number of members that answered.
func (t Tally) Total() int {
	return t.Yes + t.No + t.DontKnow
}

// MarshalJSON writes the buckets under their answer names. "don't know" is
// not a legal struct tag name, so the object is assembled by hand.
func (t Tally) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[Answer]int{
		AnswerYes:      t.Yes,
		AnswerNo:       t.No,
		AnswerDontKnow: t.DontKnow,
	})
}

// UnmarshalJSON reads the object written by MarshalJSON.
func (t *Tally) UnmarshalJSON(data []byte) error {
	var raw map[Answer]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Tally{
		Yes:      raw[AnswerYes],
		No:       raw[AnswerNo],
		DontKnow: raw[AnswerDontKnow],
	}
	return nil
}

// CompanyGroup is one company's share of a statistics search.
type CompanyGroup struct {
	Company                    Company   `json:"company"`
	HasOvertimeSalaryCount     *Tally    `json:"has_overtime_salary_count,omitempty"`
	IsOvertimeSalaryLegalCount *Tally    `json:"is_overtime_salary_legal_count,omitempty"`
	HasCompensatoryDayoffCount *Tally    `json:"has_compensatory_dayoff_count,omitempty"`
	TimeAndSalary              []Working `json:"time_and_salary"`
	Average                    Average   `json:"average"`
	Count                      int       `json:"count"`
}
