// File: models/working.go
package models

import "time"

// Record statuses.
const (
	StatusPublished = "published"
	StatusHidden    = "hidden"
)

// Salary types accepted for the hourly wage estimate.
const (
	SalaryHour  = "hour"
	SalaryDay   = "day"
	SalaryMonth = "month"
	SalaryYear  = "year"
)

// Answer is a tri-state response to a yes/no question.
type Answer string

const (
	AnswerYes      Answer = "yes"
	AnswerNo       Answer = "no"
	AnswerDontKnow Answer = "don't know"
)

// Valid reports whether a is one of the three legal answers.
func (a Answer) Valid() bool {
	return a == AnswerYes || a == AnswerNo || a == AnswerDontKnow
}

// Company identifies the employer of a working record. ID is the government
// business number when known.
type Company struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
}

// Salary is the reported pay and the period it covers.
type Salary struct {
	Type   string   `bson:"type" json:"type"`
	Amount *float64 `bson:"amount,omitempty" json:"amount,omitempty"`
}

// DataTime is the year/month the record describes.
type DataTime struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

// Working is a single working-time and salary submission. Every optional
// measurement is a pointer; nil means the submitter did not provide it.
type Working struct {
	ID             string    `bson:"_id,omitempty" json:"_id"`
	JobTitle       string    `bson:"job_title" json:"job_title"`
	Company        Company   `bson:"company" json:"company"`
	Sector         string    `bson:"sector,omitempty" json:"sector,omitempty"`
	Region         string    `bson:"region,omitempty" json:"region,omitempty"`
	EmploymentType string    `bson:"employment_type,omitempty" json:"employment_type,omitempty"`
	DataTime       *DataTime `bson:"data_time,omitempty" json:"data_time,omitempty"`
	Status         string    `bson:"status" json:"status"`
	AuthorID       string    `bson:"author_id,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`

	WeekWorkTime         *float64 `bson:"week_work_time,omitempty" json:"week_work_time,omitempty"`
	DayPromisedWorkTime  *float64 `bson:"day_promised_work_time,omitempty" json:"day_promised_work_time,omitempty"`
	DayRealWorkTime      *float64 `bson:"day_real_work_time,omitempty" json:"day_real_work_time,omitempty"`
	OvertimeFrequency    *float64 `bson:"overtime_frequency,omitempty" json:"overtime_frequency,omitempty"`
	ExperienceInYear     *float64 `bson:"experience_in_year,omitempty" json:"experience_in_year,omitempty"`
	EstimatedHourlyWage  *float64 `bson:"estimated_hourly_wage,omitempty" json:"estimated_hourly_wage,omitempty"`
	EstimatedMonthlyWage *float64 `bson:"estimated_monthly_wage,omitempty" json:"estimated_monthly_wage,omitempty"`
	Salary               *Salary  `bson:"salary,omitempty" json:"salary,omitempty"`

	HasOvertimeSalary     *Answer `bson:"has_overtime_salary,omitempty" json:"has_overtime_salary,omitempty"`
	IsOvertimeSalaryLegal *Answer `bson:"is_overtime_salary_legal,omitempty" json:"is_overtime_salary_legal,omitempty"`
	HasCompensatoryDayoff *Answer `bson:"has_compensatory_dayoff,omitempty" json:"has_compensatory_dayoff,omitempty"`
}

// IsPublished reports whether the record may appear in listings and statistics.
func (w Working) IsPublished() bool {
	return w.Status == StatusPublished
}

// WorkingList is the flat listing response.
type WorkingList struct {
	Total         int       `json:"total"`
	TimeAndSalary []Working `json:"time_and_salary"`
}

// StatusUpdate is the body accepted when hiding or publishing a record.
type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
