package program

import (
	"testing"

	"github.com/dukerupert/fallow/internal/model"
)

func checkInsOn(dates ...string) []model.CheckIn {
	cs := make([]model.CheckIn, len(dates))
	for i, d := range dates {
		cs[i] = model.CheckIn{Date: d, PhoneOutBedroom: 1}
	}
	return cs
}

func TestDetectGapTooEarly(t *testing.T) {
	// Days 1 and 2 never signal, even with no history at all.
	for day := 1; day <= 2; day++ {
		if gap := DetectGap(nil, day, "2024-01-01"); gap != nil {
			t.Errorf("day %d: got %+v, want nil", day, gap)
		}
	}
}

func TestDetectGapNoStartDate(t *testing.T) {
	if gap := DetectGap(nil, 10, ""); gap != nil {
		t.Errorf("got %+v, want nil without a start date", gap)
	}
}

func TestDetectGapEmptyHistory(t *testing.T) {
	gap := DetectGap(nil, 5, "2024-01-01")
	if gap == nil {
		t.Fatal("expected gap for empty history on day 5")
	}
	if gap.MissedDays != 4 || gap.LastActiveDay != 0 {
		t.Errorf("gap = %+v, want missed 4 last active 0", gap)
	}
}

func TestDetectGapEmptyHistoryDayThree(t *testing.T) {
	// Day 3 with no history: 2 missed days, exactly at the threshold.
	gap := DetectGap(nil, 3, "2024-01-01")
	if gap == nil {
		t.Fatal("expected gap")
	}
	if gap.MissedDays != 2 || gap.LastActiveDay != 0 {
		t.Errorf("gap = %+v, want missed 2 last active 0", gap)
	}
}

func TestDetectGapSingleMissedDayIsNotAGap(t *testing.T) {
	// Last active day 3, current day 5: one day missed.
	history := checkInsOn("2024-01-01", "2024-01-02", "2024-01-03")
	if gap := DetectGap(history, 5, "2024-01-01"); gap != nil {
		t.Errorf("got %+v, want nil for a single missed day", gap)
	}
}

func TestDetectGapNoMissedDays(t *testing.T) {
	history := checkInsOn("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04")
	if gap := DetectGap(history, 5, "2024-01-01"); gap != nil {
		t.Errorf("got %+v, want nil when yesterday was active", gap)
	}
}

func TestDetectGapTwoMissedDays(t *testing.T) {
	// Last active day 2, current day 5: days 3 and 4 missed.
	history := checkInsOn("2024-01-01", "2024-01-02")
	gap := DetectGap(history, 5, "2024-01-01")
	if gap == nil {
		t.Fatal("expected gap")
	}
	if gap.MissedDays != 2 || gap.LastActiveDay != 2 {
		t.Errorf("gap = %+v, want missed 2 last active 2", gap)
	}
}

func TestDetectGapUsesLatestCheckIn(t *testing.T) {
	// Unordered history; the latest date wins.
	history := checkInsOn("2024-01-05", "2024-01-02", "2024-01-03")
	gap := DetectGap(history, 10, "2024-01-01")
	if gap == nil {
		t.Fatal("expected gap")
	}
	if gap.LastActiveDay != 5 || gap.MissedDays != 4 {
		t.Errorf("gap = %+v, want last active 5 missed 4", gap)
	}
}

func TestDetectGapCheckedInToday(t *testing.T) {
	// A check-in for the current day means missed is negative; no signal.
	history := checkInsOn("2024-01-05")
	if gap := DetectGap(history, 5, "2024-01-01"); gap != nil {
		t.Errorf("got %+v, want nil when today is recorded", gap)
	}
}

func TestDetectGapIsPure(t *testing.T) {
	history := checkInsOn("2024-01-01")
	first := DetectGap(history, 6, "2024-01-01")
	second := DetectGap(history, 6, "2024-01-01")
	if first == nil || second == nil {
		t.Fatal("expected gap on both calls")
	}
	if *first != *second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
