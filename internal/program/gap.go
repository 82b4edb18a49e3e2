package program

import "github.com/dukerupert/fallow/internal/model"

// Gap describes a lapse of two or more days between the latest recorded
// check-in and the current program day.
type Gap struct {
	MissedDays    int `json:"missed_days"`
	LastActiveDay int `json:"last_active_day"`
}

// DetectGap reports whether the user has missed two or more consecutive
// days. It is pure and re-callable: surfacing the result at most once per
// calendar day is the caller's concern.
//
// Returns nil during the first two program days, when a single day (or
// none) was missed, or on any date-mapping error. With no history at all,
// every prior day counts as missed and LastActiveDay is 0.
func DetectGap(history []model.CheckIn, currentDay int, startDate string) *Gap {
	if currentDay < 3 || startDate == "" {
		return nil
	}

	if len(history) == 0 {
		missed := currentDay - 1
		if missed < 2 {
			return nil
		}
		return &Gap{MissedDays: missed, LastActiveDay: 0}
	}

	// ISO dates compare lexicographically, so no parsing needed here.
	latest := history[0].Date
	for _, c := range history {
		if c.Date > latest {
			latest = c.Date
		}
	}

	lastActiveDay, err := DayForDate(startDate, latest)
	if err != nil {
		return nil
	}

	missed := currentDay - lastActiveDay - 1
	if missed < 2 {
		return nil
	}
	return &Gap{MissedDays: missed, LastActiveDay: lastActiveDay}
}
