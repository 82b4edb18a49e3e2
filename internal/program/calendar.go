// Package program maps calendar dates onto the 30-day plan and detects
// multi-day lapses in check-in activity.
package program

import (
	"fmt"
	"time"

	"github.com/dukerupert/fallow/internal/plan"
)

const dateLayout = "2006-01-02"

// noon anchors a date-only value at 12:00 UTC. Differencing noon-anchored
// times is immune to daylight-saving shifts that make some calendar days
// 23 or 25 hours long.
func noon(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// CurrentDay returns the 1-based program day for "now" given the start
// date, clamped to [1, plan.TotalDays]. The start date itself is day 1.
func CurrentDay(startDate string, now time.Time) (int, error) {
	start, err := noon(startDate)
	if err != nil {
		return 0, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)
	day := int(today.Sub(start).Hours()/24) + 1

	if day < 1 {
		return 1, nil
	}
	if day > plan.TotalDays {
		return plan.TotalDays, nil
	}
	return day, nil
}

// DateForDay is the inverse of CurrentDay: the calendar date on which a
// program day falls. For any n in [1, plan.TotalDays],
// CurrentDay(start, DateForDay(start, n)) == n.
func DateForDay(startDate string, dayNumber int) (string, error) {
	start, err := noon(startDate)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, dayNumber-1).Format(dateLayout), nil
}

// DayForDate maps a calendar date back to its program day number, without
// clamping. Dates before the start date yield values < 1.
func DayForDate(startDate, date string) (int, error) {
	start, err := noon(startDate)
	if err != nil {
		return 0, err
	}
	d, err := noon(date)
	if err != nil {
		return 0, err
	}
	return int(d.Sub(start).Hours()/24) + 1, nil
}
