package render

import (
	"fmt"
	"time"
)

// longDateLayout renders e.g. "December 25, 2024".
const longDateLayout = "January 2, 2006"

// FormatDate renders a calendar date as "Month D, YYYY".
// Components that do not form a real date fall back to "month/day/year", e.g. "13/25/2024".
func FormatDate(year, month, day int) string {
	if !validDate(year, month, day) {
		return fmt.Sprintf("%d/%d/%d", month, day, year)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(longDateLayout)
}

func validDate(year, month, day int) bool {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(time.Month(month), year)
}

// daysIn returns the number of days in month of year.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
