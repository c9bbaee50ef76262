package view

import "time"

// Elapsed is a membership span split into calendar years, months, and days.
type Elapsed struct {
	Years  int
	Months int
	Days   int
}

// ElapsedSince computes the calendar difference between join and now. When the
// day-of-month difference is negative, whole previous months are borrowed at
// their actual lengths until the day count is non-negative; a negative month
// count then borrows twelve months from the year count. All components are
// non-negative whenever join is not after now.
func ElapsedSince(join, now time.Time) Elapsed {
	years := now.Year() - join.Year()
	months := int(now.Month()) - int(join.Month())
	days := now.Day() - join.Day()

	y, m := now.Year(), int(now.Month())
	for days < 0 {
		m--
		if m == 0 {
			m = 12
			y--
		}
		days += daysInMonth(y, time.Month(m))
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return Elapsed{Years: years, Months: months, Days: days}
}

// MonthGrid is the attendance calendar for one calendar month.
type MonthGrid struct {
	Year          int
	Month         time.Month
	Label         string
	// LeadingBlanks is the weekday index of day 1 (0=Sunday); the grid pads
	// that many empty cells before the first day.
	LeadingBlanks int
	Days          []DayCell
}

// DayCell is one day of the month grid.
type DayCell struct {
	Day     int
	Date    string // YYYY-MM-DD
	Present bool
}

// BuildMonthGrid produces the grid for (year, month), marking each day present
// when it appears in the attendance list. Attendance values are compared
// date-only; any time component is ignored.
func BuildMonthGrid(year int, month time.Month, attendance []time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	total := daysInMonth(year, month)

	present := make(map[string]struct{}, len(attendance))
	for _, d := range attendance {
		present[d.Format("2006-01-02")] = struct{}{}
	}

	days := make([]DayCell, 0, total)
	for d := 1; d <= total; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		_, attended := present[date]
		days = append(days, DayCell{Day: d, Date: date, Present: attended})
	}

	return MonthGrid{
		Year:          year,
		Month:         month,
		Label:         first.Format("January 2006"),
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
