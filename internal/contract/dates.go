package contract

import (
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// Yesterday returns the calendar day before now, ISO formatted.
func Yesterday(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(schema.ISODate)
}

// MonthDates enumerates every calendar day of now's month in ascending order.
// Future days are included; they simply yield empty fetch results downstream.
func MonthDates(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var dates []string
	for d := first; d.Month() == now.Month(); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(schema.ISODate))
	}
	return dates
}

// MonthStart returns midnight on the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// DatesFor resolves the target dates for a run: an explicit date, every day of
// the current month, or yesterday when neither is requested.
func DatesFor(date string, month bool, now time.Time) []string {
	switch {
	case date != "":
		return []string{date}
	case month:
		return MonthDates(now)
	default:
		return []string{Yesterday(now)}
	}
}

// FormatHuman renders an ISO date as a full weekday/month/day/year title.
// The date is returned unchanged when it does not parse.
func FormatHuman(date string) string {
	d, err := time.Parse(schema.ISODate, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}
