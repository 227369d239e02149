package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
	"github.com/planna-app/planna/internal/store"
)

var testSession = session.Context{UserID: "u-1", Email: "john@example.com"}

func newRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(session.WithSession(req.Context(), testSession))
}

func TestCreateEventNormalizesTime(t *testing.T) {
	h := NewCalendarHandler(store.NewCalendarStore())

	req := newRequest(t, "POST", "/api/events",
		`{"title":"Dinner","date":"2026-09-01","time":"19:00"}`)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var event model.Event
	if err := json.NewDecoder(rec.Body).Decode(&event); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if event.Time != "7:00 PM" {
		t.Errorf("Time = %q, want %q", event.Time, "7:00 PM")
	}
	if event.CreatedBy != "u-1" {
		t.Errorf("CreatedBy = %q, want %q", event.CreatedBy, "u-1")
	}
}

func TestCreateEventRejectsInvalidTime(t *testing.T) {
	h := NewCalendarHandler(store.NewCalendarStore())

	req := newRequest(t, "POST", "/api/events",
		`{"title":"Dinner","date":"2026-09-01","time":"25:00"}`)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateEventRequiresTitle(t *testing.T) {
	h := NewCalendarHandler(store.NewCalendarStore())

	req := newRequest(t, "POST", "/api/events", `{"title":"   ","date":"2026-09-01"}`)
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListEventsFiltersByDate(t *testing.T) {
	cs := store.NewCalendarStore()
	cs.CreateEvent(testSession, model.EventDraft{Title: "A", Date: "2026-09-01"})
	cs.CreateEvent(testSession, model.EventDraft{Title: "B", Date: "2026-09-02"})
	h := NewCalendarHandler(cs)

	req := newRequest(t, "GET", "/api/events?date=2026-09-02", "")
	rec := httptest.NewRecorder()
	h.ListEvents(rec, req)

	var events []model.Event
	if err := json.NewDecoder(rec.Body).Decode(&events); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(events) != 1 || events[0].Title != "B" {
		t.Errorf("got %d events, want only B", len(events))
	}
}

func TestUpdateEventUnknownIDIsNoContent(t *testing.T) {
	h := NewCalendarHandler(store.NewCalendarStore())

	req := newRequest(t, "PUT", "/api/events/missing", `{"title":"Renamed"}`)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.UpdateEvent(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestUpdateViewRejectsUnknownMode(t *testing.T) {
	h := NewCalendarHandler(store.NewCalendarStore())

	req := newRequest(t, "PUT", "/api/calendar/view", `{"view":"yearly"}`)
	rec := httptest.NewRecorder()
	h.UpdateView(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdateViewChangesState(t *testing.T) {
	cs := store.NewCalendarStore()
	h := NewCalendarHandler(cs)

	req := newRequest(t, "PUT", "/api/calendar/view",
		`{"view":"agenda","selected_date":"2026-12-25"}`)
	rec := httptest.NewRecorder()
	h.UpdateView(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if cs.View() != store.ViewAgenda {
		t.Errorf("View = %q, want %q", cs.View(), store.ViewAgenda)
	}
	if cs.SelectedDate() != "2026-12-25" {
		t.Errorf("SelectedDate = %q, want %q", cs.SelectedDate(), "2026-12-25")
	}
}
