package changelog

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	dayLabelLayout = "02 Jan 2006"
	monthLabel     = "January 2006"
	weekLabelSep   = " - "
)

// PeriodOf derives the period key, human label, and period start for a
// timestamp under the given grouping mode. Timestamps are bucketed in UTC
// so the same commit always lands in the same period regardless of the
// local timezone of the machine running the tool.
func PeriodOf(ts time.Time, mode GroupMode) (key, label string, start time.Time) {
	t := ts.UTC()
	switch mode {
	case GroupByWeek:
		monday := startOfISOWeek(t)
		year, week := t.ISOWeek()
		key = fmt.Sprintf("%04d-W%02d", year, week)
		label = monday.Format(dayLabelLayout) + weekLabelSep + monday.AddDate(0, 0, 6).Format(dayLabelLayout)
		start = monday
	case GroupByMonth:
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		key = start.Format(monthKeyLayout)
		label = start.Format(monthLabel)
	default: // day, or an unrecognized mode
		start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		key = start.Format(dayKeyLayout)
		label = start.Format(dayLabelLayout)
	}
	return key, label, start
}

// startOfISOWeek returns the Monday 00:00 UTC of the ISO week containing t.
func startOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started six days earlier
	}
	return day.AddDate(0, 0, 1-weekday)
}

// ParseLabel recovers the period key and start from a section heading.
// It tries the three label layouts the renderer emits (day, week range,
// month). Returns ok=false for headings that are not period labels, such
// as sections added to the changelog by hand.
func ParseLabel(label string) (key string, start time.Time, ok bool) {
	label = strings.TrimSpace(label)

	if first, _, found := strings.Cut(label, weekLabelSep); found {
		if monday, err := time.ParseInLocation(dayLabelLayout, strings.TrimSpace(first), time.UTC); err == nil {
			year, week := monday.ISOWeek()
			return fmt.Sprintf("%04d-W%02d", year, week), monday, true
		}
	}

	if day, err := time.ParseInLocation(dayLabelLayout, label, time.UTC); err == nil {
		return day.Format(dayKeyLayout), day, true
	}

	if month, err := time.ParseInLocation(monthLabel, label, time.UTC); err == nil {
		return month.Format(monthKeyLayout), month, true
	}

	return "", time.Time{}, false
}
