package store

import (
	"testing"

	"github.com/dukerupert/fallow/internal/model"
)

func TestCheckInGetMissing(t *testing.T) {
	s := NewCheckInStore(testDB(t))

	c, err := s.GetByDate("2024-01-01")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if c != nil {
		t.Errorf("got %+v, want nil for missing date", c)
	}
}

func TestCheckInUpsertAndGet(t *testing.T) {
	s := NewCheckInStore(testDB(t))

	in := &model.CheckIn{
		Date:              "2024-01-01",
		PhoneOutBedroom:   1,
		MeditationMinutes: 10,
		Hardest:           "evening scrolling",
	}
	if err := s.Upsert(in); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := s.GetByDate("2024-01-01")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got == nil {
		t.Fatal("check-in not found after upsert")
	}
	if got.PhoneOutBedroom != 1 || got.MeditationMinutes != 10 {
		t.Errorf("habit values not persisted: %+v", got)
	}
	if got.Hardest != "evening scrolling" {
		t.Errorf("hardest = %q", got.Hardest)
	}
	if got.CreatedAt == nil {
		t.Error("created_at not set")
	}
}

// Saving the same date twice must leave a single record, with the second
// payload's values winning.
func TestCheckInUpsertIdempotent(t *testing.T) {
	s := NewCheckInStore(testDB(t))

	first := &model.CheckIn{Date: "2024-01-02", PhoneOutBedroom: 1, BoredomMinutes: 5}
	if err := s.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := &model.CheckIn{Date: "2024-01-02", PhoneOutBedroom: 0, BoredomMinutes: 15, Proud: "sat with it"}
	if err := s.Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d records, want 1", len(all))
	}
	got := all[0]
	if got.PhoneOutBedroom != 0 || got.BoredomMinutes != 15 {
		t.Errorf("second save did not win: %+v", got)
	}
	if got.Proud != "sat with it" {
		t.Errorf("proud = %q", got.Proud)
	}
}

func TestCheckInListOrdered(t *testing.T) {
	s := NewCheckInStore(testDB(t))

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		if err := s.Upsert(&model.CheckIn{Date: date, EveningJournal: 1}); err != nil {
			t.Fatalf("upsert %s: %v", date, err)
		}
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	for i, want := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if all[i].Date != want {
			t.Errorf("position %d: date = %s, want %s", i, all[i].Date, want)
		}
	}
}
