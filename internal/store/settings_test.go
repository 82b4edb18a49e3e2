package store

import "testing"

func TestSettingsGetUnset(t *testing.T) {
	s := NewSettingsStore(testDB(t))

	val, err := s.Get(KeyStartDate)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "" {
		t.Errorf("unset key returned %q, want empty", val)
	}
}

func TestSettingsSetAndGet(t *testing.T) {
	s := NewSettingsStore(testDB(t))

	if err := s.Set(KeyStartDate, "2024-01-01"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := s.StartDate()
	if err != nil {
		t.Fatalf("StartDate: %v", err)
	}
	if val != "2024-01-01" {
		t.Errorf("start date = %q, want 2024-01-01", val)
	}
}

func TestSettingsSetOverwrites(t *testing.T) {
	s := NewSettingsStore(testDB(t))

	if err := s.Set(KeyUserName, "Ada"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(KeyUserName, "Grace"); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	val, err := s.UserName()
	if err != nil {
		t.Fatalf("UserName: %v", err)
	}
	if val != "Grace" {
		t.Errorf("user name = %q, want Grace", val)
	}
}
