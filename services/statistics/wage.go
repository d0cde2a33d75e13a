package statistics

import "goodjob/models"

const (
	weeksPerYear       = 52
	holidayDaysPerYear = 19
	monthsPerYear      = 12
)

// EstimatedHourlyWage derives an hourly wage from the reported salary and
// working hours. It returns nil when the salary or a required working-time
// field is missing, or when the yearly hours are not positive.
//
//	hour:  amount
//	day:   amount / day_real_work_time
//	month: amount*12 / (52*week_work_time - 19*day_real_work_time)
//	year:  amount / (52*week_work_time - 19*day_real_work_time)
func EstimatedHourlyWage(w models.Working) *float64 {
	if w.Salary == nil || w.Salary.Amount == nil {
		return nil
	}
	amount := *w.Salary.Amount

	var wage float64
	switch w.Salary.Type {
	case models.SalaryHour:
		wage = amount
	case models.SalaryDay:
		if w.DayRealWorkTime == nil || *w.DayRealWorkTime <= 0 {
			return nil
		}
		wage = amount / *w.DayRealWorkTime
	case models.SalaryMonth, models.SalaryYear:
		hours, ok := yearlyWorkHours(w)
		if !ok {
			return nil
		}
		if w.Salary.Type == models.SalaryMonth {
			amount *= monthsPerYear
		}
		wage = amount / hours
	default:
		return nil
	}
	return &wage
}

func yearlyWorkHours(w models.Working) (float64, bool) {
	if w.WeekWorkTime == nil || w.DayRealWorkTime == nil {
		return 0, false
	}
	week, day := *w.WeekWorkTime, *w.DayRealWorkTime
	hours := weeksPerYear*week - holidayDaysPerYear*day
	if hours <= 0 {
		return 0, false
	}
	return hours, true
}
