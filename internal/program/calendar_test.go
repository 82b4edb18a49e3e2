package program

import (
	"testing"
	"time"
)

func TestCurrentDayStartIsDayOne(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-01-01T08:30:00Z")
	day, err := CurrentDay("2024-01-01", now)
	if err != nil {
		t.Fatalf("current day: %v", err)
	}
	if day != 1 {
		t.Errorf("day = %d, want 1", day)
	}
}

func TestCurrentDayElapsed(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-01-05T12:00:00Z")
	day, err := CurrentDay("2024-01-01", now)
	if err != nil {
		t.Fatalf("current day: %v", err)
	}
	if day != 5 {
		t.Errorf("day = %d, want 5", day)
	}
}

func TestCurrentDayClamps(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want int
	}{
		{"before start", "2023-06-01T00:00:00Z", 1},
		{"far past program end", "2025-01-01T00:00:00Z", 30},
		{"exactly day 30", "2024-01-30T23:59:59Z", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, _ := time.Parse(time.RFC3339, tt.now)
			day, err := CurrentDay("2024-01-01", now)
			if err != nil {
				t.Fatalf("current day: %v", err)
			}
			if day != tt.want {
				t.Errorf("day = %d, want %d", day, tt.want)
			}
		})
	}
}

func TestCurrentDayInvalidStart(t *testing.T) {
	if _, err := CurrentDay("not-a-date", time.Now()); err == nil {
		t.Fatal("expected error for invalid start date")
	}
}

// Crossing the US spring-forward transition (2024-03-10) must not shift
// the day count even when "now" is expressed in a DST-observing zone.
func TestCurrentDayAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	now := time.Date(2024, 3, 11, 0, 30, 0, 0, loc)
	day, err := CurrentDay("2024-03-08", now)
	if err != nil {
		t.Fatalf("current day: %v", err)
	}
	if day != 4 {
		t.Errorf("day = %d, want 4", day)
	}
}

func TestDateForDay(t *testing.T) {
	date, err := DateForDay("2024-01-01", 5)
	if err != nil {
		t.Fatalf("date for day: %v", err)
	}
	if date != "2024-01-05" {
		t.Errorf("date = %q, want %q", date, "2024-01-05")
	}
}

func TestDateForDayCrossesMonth(t *testing.T) {
	date, err := DateForDay("2024-01-25", 10)
	if err != nil {
		t.Fatalf("date for day: %v", err)
	}
	if date != "2024-02-03" {
		t.Errorf("date = %q, want %q", date, "2024-02-03")
	}
}

func TestRoundTrip(t *testing.T) {
	starts := []string{"2024-01-01", "2024-02-28", "2024-12-20", "2025-03-01"}
	for _, start := range starts {
		for d := 1; d <= 30; d++ {
			date, err := DateForDay(start, d)
			if err != nil {
				t.Fatalf("date for day %d: %v", d, err)
			}
			now, _ := time.Parse("2006-01-02", date)
			got, err := CurrentDay(start, now)
			if err != nil {
				t.Fatalf("current day for %q: %v", date, err)
			}
			if got != d {
				t.Errorf("start %s day %d: round-trip gave %d", start, d, got)
			}
		}
	}
}

func TestDayForDate(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1},
		{"2024-01-15", 15},
		{"2023-12-30", -1}, // before the start, no clamping
	}
	for _, tt := range tests {
		got, err := DayForDate("2024-01-01", tt.date)
		if err != nil {
			t.Fatalf("day for date %q: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("day for %q = %d, want %d", tt.date, got, tt.want)
		}
	}
}
