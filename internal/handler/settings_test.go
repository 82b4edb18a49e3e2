package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dukerupert/fallow/internal/store"
)

func TestSettingsGetBeforeOnboarding(t *testing.T) {
	h := NewSettingsHandler(store.NewSettingsStore(testDB(t)), nil, discardLogger())

	req := httptest.NewRequest("GET", "/api/settings", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		StartDate  *string `json:"startDate"`
		CurrentDay *int    `json:"currentDay"`
		UserName   *string `json:"userName"`
	}
	decodeBody(t, rec, &got)
	if got.StartDate != nil || got.CurrentDay != nil || got.UserName != nil {
		t.Errorf("expected all-null response before onboarding, got %+v", got)
	}
}

func TestSettingsUpdateAndGet(t *testing.T) {
	ss := store.NewSettingsStore(testDB(t))
	h := NewSettingsHandler(ss, nil, discardLogger())

	today := time.Now().Format("2006-01-02")
	req := httptest.NewRequest("POST", "/api/settings", jsonBody(`{"startDate":"`+today+`","userName":"Ada"}`))
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/api/settings", nil))
	var got struct {
		StartDate  *string `json:"startDate"`
		CurrentDay *int    `json:"currentDay"`
		UserName   *string `json:"userName"`
	}
	decodeBody(t, rec, &got)
	if got.StartDate == nil || *got.StartDate != today {
		t.Errorf("startDate = %v", got.StartDate)
	}
	if got.CurrentDay == nil || *got.CurrentDay != 1 {
		t.Errorf("currentDay = %v, want 1 on the start date itself", got.CurrentDay)
	}
	if got.UserName == nil || *got.UserName != "Ada" {
		t.Errorf("userName = %v", got.UserName)
	}
}

func TestSettingsUpdatePartial(t *testing.T) {
	ss := store.NewSettingsStore(testDB(t))
	h := NewSettingsHandler(ss, nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest("POST", "/api/settings", jsonBody(`{"userName":"Ada"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest("POST", "/api/settings", jsonBody(`{"startDate":"2024-01-01"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	name, err := ss.UserName()
	if err != nil {
		t.Fatalf("UserName: %v", err)
	}
	if name != "Ada" {
		t.Errorf("user name = %q, want untouched value", name)
	}
}

func TestSettingsUpdateRejectsBadDate(t *testing.T) {
	h := NewSettingsHandler(store.NewSettingsStore(testDB(t)), nil, discardLogger())

	for _, body := range []string{
		`{"startDate":"01/02/2024"}`,
		`{"startDate":"2024-13-01"}`,
		`{"startDate":"not a date"}`,
	} {
		rec := httptest.NewRecorder()
		h.Update(rec, httptest.NewRequest("POST", "/api/settings", jsonBody(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSettingsUpdateRejectsBadJSON(t *testing.T) {
	h := NewSettingsHandler(store.NewSettingsStore(testDB(t)), nil, discardLogger())

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest("POST", "/api/settings", jsonBody(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
