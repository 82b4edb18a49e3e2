package habit

import (
	"time"

	"github.com/dukerupert/fallow/internal/model"
)

// Date-only values are anchored at noon before any arithmetic so that
// daylight-saving transitions cannot shift a day boundary.
const dateLayout = "2006-01-02"

func noonAnchor(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// Streak counts the consecutive days strictly before referenceDate on
// which the habit was completed. The walk starts at the day before
// referenceDate and stops at the first date with no check-in record or
// with the habit unset; referenceDate itself is never counted.
func Streak(history []model.CheckIn, h Habit, referenceDate string) int {
	byDate := make(map[string]*model.CheckIn, len(history))
	for i := range history {
		byDate[history[i].Date] = &history[i]
	}

	day, err := noonAnchor(referenceDate)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		day = day.AddDate(0, 0, -1)
		c, ok := byDate[day.Format(dateLayout)]
		if !ok || !h.Done(c) {
			return streak
		}
		streak++
	}
}

// AllStreaks computes Streak for every tracked habit.
func AllStreaks(history []model.CheckIn, referenceDate string) map[Habit]int {
	streaks := make(map[Habit]int, len(All))
	for _, h := range All {
		streaks[h] = Streak(history, h, referenceDate)
	}
	return streaks
}
