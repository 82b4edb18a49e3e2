package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/fallow/internal/model"
	"github.com/dukerupert/fallow/internal/store"
)

func TestCheckInGetMissingDateIsNull(t *testing.T) {
	h := NewCheckInHandler(store.NewCheckInStore(testDB(t)), nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/checkin?date=2024-01-01", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "null\n" {
		t.Errorf("body = %q, want null", body)
	}
}

func TestCheckInSaveAndGet(t *testing.T) {
	h := NewCheckInHandler(store.NewCheckInStore(testDB(t)), nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest("POST", "/api/checkin", jsonBody(
		`{"date":"2024-01-01","phone_out_bedroom":1,"meditation_minutes":10,"hardest":"the evening"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/checkin?date=2024-01-01", nil))
	var got model.CheckIn
	decodeBody(t, rec, &got)
	if got.PhoneOutBedroom != 1 || got.MeditationMinutes != 10 {
		t.Errorf("habit values not round-tripped: %+v", got)
	}
	if got.Hardest != "the evening" {
		t.Errorf("hardest = %q", got.Hardest)
	}
}

func TestCheckInGetAllEmptyIsArray(t *testing.T) {
	h := NewCheckInHandler(store.NewCheckInStore(testDB(t)), nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/checkin", nil))

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty array", body)
	}
}

func TestCheckInSaveTwiceKeepsOneRecord(t *testing.T) {
	cs := store.NewCheckInStore(testDB(t))
	h := NewCheckInHandler(cs, nil, discardLogger())

	for _, body := range []string{
		`{"date":"2024-01-02","boredom_minutes":5}`,
		`{"date":"2024-01-02","boredom_minutes":15}`,
	} {
		rec := httptest.NewRecorder()
		h.Save(rec, httptest.NewRequest("POST", "/api/checkin", jsonBody(body)))
		if rec.Code != http.StatusOK {
			t.Fatalf("save status = %d", rec.Code)
		}
	}

	all, err := cs.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d records, want 1", len(all))
	}
	if all[0].BoredomMinutes != 15 {
		t.Errorf("boredom = %d, want second save's value", all[0].BoredomMinutes)
	}
}

func TestCheckInSaveRejectsBadDate(t *testing.T) {
	h := NewCheckInHandler(store.NewCheckInStore(testDB(t)), nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest("POST", "/api/checkin", jsonBody(`{"date":"Jan 1"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
