package payroll

import "strings"

// Window scopes an aggregation query to a calendar month, or to all time
// when Month is empty.
type Window struct {
	Month string
}

// AllTime is the unrestricted reporting window.
var AllTime = Window{}

// MonthWindow scopes aggregation to a single "YYYY-MM" month.
func MonthWindow(month string) Window {
	return Window{Month: month}
}

func (w Window) IsAllTime() bool {
	return w.Month == ""
}

// Contains reports whether a "YYYY-MM-DD" date falls inside the window.
// Month membership is a plain prefix match on the date string.
func (w Window) Contains(date string) bool {
	if w.IsAllTime() {
		return true
	}
	return strings.HasPrefix(date, w.Month)
}

// MonthOf returns the "YYYY-MM" month of a "YYYY-MM-DD" date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
