package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
	"github.com/planna-app/planna/internal/store"
	"github.com/planna-app/planna/internal/timevalue"
)

type CalendarHandler struct {
	calendarStore *store.CalendarStore
}

func NewCalendarHandler(cs *store.CalendarStore) *CalendarHandler {
	return &CalendarHandler{calendarStore: cs}
}

func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft model.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if draft.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	// Events are stored with the display form of the time, so any accepted
	// input round-trips to "h:mm AM".
	if draft.Time != "" {
		tv, err := timevalue.Decode(draft.Time)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid time")
			return
		}
		draft.Time = tv.String()
	}

	sess, _ := session.FromContext(r.Context())
	event := h.calendarStore.CreateEvent(sess, draft)
	writeJSON(w, http.StatusCreated, event)
}

func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var events []model.Event
	if date := r.URL.Query().Get("date"); date != "" {
		events = h.calendarStore.EventsOn(date)
	} else {
		events = h.calendarStore.Events()
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := h.calendarStore.Event(r.PathValue("id"))
	if event == nil {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch model.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if patch.Time != nil && *patch.Time != "" {
		tv, err := timevalue.Decode(*patch.Time)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid time")
			return
		}
		normalized := tv.String()
		patch.Time = &normalized
	}

	// Unknown ids are a silent no-op in the store; the response is the same
	// either way.
	h.calendarStore.UpdateEvent(r.PathValue("id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.calendarStore.DeleteEvent(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

type viewState struct {
	SelectedDate string `json:"selected_date"`
	View         string `json:"view"`
}

func (h *CalendarHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewState{
		SelectedDate: h.calendarStore.SelectedDate(),
		View:         string(h.calendarStore.View()),
	})
}

func (h *CalendarHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	var req viewState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.View != "" {
		switch store.View(req.View) {
		case store.ViewMonth, store.ViewWeek, store.ViewAgenda:
			h.calendarStore.SetView(store.View(req.View))
		default:
			writeError(w, http.StatusBadRequest, "view must be month, week, or agenda")
			return
		}
	}
	if req.SelectedDate != "" {
		h.calendarStore.SetSelectedDate(req.SelectedDate)
	}

	writeJSON(w, http.StatusOK, viewState{
		SelectedDate: h.calendarStore.SelectedDate(),
		View:         string(h.calendarStore.View()),
	})
}
