package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
)

// View is the calendar screen's display mode.
type View string

const (
	ViewMonth  View = "month"
	ViewWeek   View = "week"
	ViewAgenda View = "agenda"
)

// CalendarStore owns the event collection plus the session's calendar view
// state (selected date and display mode).
type CalendarStore struct {
	broadcaster
	mu    sync.RWMutex
	events map[string]model.Event
	order  []string

	selectedDate string
	view         View

	now   func() time.Time
	newID func() string
}

func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		events:       make(map[string]model.Event),
		selectedDate: time.Now().Format("2006-01-02"),
		view:         ViewMonth,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CreateEvent inserts a new event stamped with a fresh id, the current time,
// and the session user as creator, then returns it.
func (s *CalendarStore) CreateEvent(sess session.Context, draft model.EventDraft) model.Event {
	s.mu.Lock()
	ev := model.Event{
		ID:        s.newID(),
		GroupID:   draft.GroupID,
		Title:     draft.Title,
		Date:      draft.Date,
		Time:      draft.Time,
		Note:      draft.Note,
		MemberIDs: cloneIDs(draft.MemberIDs),
		CreatedBy: sess.UserID,
		CreatedAt: s.now().UTC(),
	}
	s.events[ev.ID] = ev
	s.order = append(s.order, ev.ID)
	s.mu.Unlock()

	s.notify(Change{Entity: "event", Action: ActionCreated, ID: ev.ID})
	return cloneEvent(ev)
}

// UpdateEvent merges the patch onto the stored event. Unknown ids are a
// silent no-op.
func (s *CalendarStore) UpdateEvent(id string, patch model.EventPatch) {
	s.mu.Lock()
	ev, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if patch.Title != nil {
		ev.Title = *patch.Title
	}
	if patch.Date != nil {
		ev.Date = *patch.Date
	}
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Note != nil {
		ev.Note = *patch.Note
	}
	if patch.MemberIDs != nil {
		ev.MemberIDs = cloneIDs(*patch.MemberIDs)
	}
	s.events[id] = ev
	s.mu.Unlock()

	s.notify(Change{Entity: "event", Action: ActionUpdated, ID: id})
}

// DeleteEvent removes the event. Unknown ids are a silent no-op.
func (s *CalendarStore) DeleteEvent(id string) {
	s.mu.Lock()
	if _, ok := s.events[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.events, id)
	s.order = removeID(s.order, id)
	s.mu.Unlock()

	s.notify(Change{Entity: "event", Action: ActionDeleted, ID: id})
}

// Events returns all events in insertion order.
func (s *CalendarStore) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneEvent(s.events[id]))
	}
	return out
}

// EventsOn returns the events on the given YYYY-MM-DD date, in insertion order.
func (s *CalendarStore) EventsOn(date string) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Event
	for _, id := range s.order {
		if ev := s.events[id]; ev.Date == date {
			out = append(out, cloneEvent(ev))
		}
	}
	return out
}

// Event returns the event with the given id, or nil.
func (s *CalendarStore) Event(id string) *model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	if !ok {
		return nil
	}
	c := cloneEvent(ev)
	return &c
}

func (s *CalendarStore) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

func (s *CalendarStore) SetSelectedDate(date string) {
	s.mu.Lock()
	s.selectedDate = date
	s.mu.Unlock()
}

func (s *CalendarStore) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *CalendarStore) SetView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

func cloneEvent(ev model.Event) model.Event {
	ev.MemberIDs = cloneIDs(ev.MemberIDs)
	return ev
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
