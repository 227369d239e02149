package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
)

// ListStore owns two related collections: lists and their items. Deleting a
// list removes its items in the same mutation, so subscribers never observe
// orphaned items.
type ListStore struct {
	broadcaster
	mu        sync.RWMutex
	lists     map[string]model.List
	listOrder []string
	items     map[string]model.ListItem
	itemOrder []string

	now   func() time.Time
	newID func() string
}

func NewListStore() *ListStore {
	return &ListStore{
		lists: make(map[string]model.List),
		items: make(map[string]model.ListItem),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *ListStore) CreateList(sess session.Context, draft model.ListDraft) model.List {
	s.mu.Lock()
	l := model.List{
		ID:        s.newID(),
		GroupID:   draft.GroupID,
		Name:      draft.Name,
		Shared:    draft.Shared,
		CreatedBy: sess.UserID,
		CreatedAt: s.now().UTC(),
	}
	s.lists[l.ID] = l
	s.listOrder = append(s.listOrder, l.ID)
	s.mu.Unlock()

	s.notify(Change{Entity: "list", Action: ActionCreated, ID: l.ID})
	return l
}

// DeleteList removes the list and cascades removal of every item whose
// ListID matches, under a single notification. Unknown ids are a no-op.
func (s *ListStore) DeleteList(id string) {
	s.mu.Lock()
	if _, ok := s.lists[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.lists, id)
	s.listOrder = removeID(s.listOrder, id)

	kept := s.itemOrder[:0]
	for _, itemID := range s.itemOrder {
		if s.items[itemID].ListID == id {
			delete(s.items, itemID)
			continue
		}
		kept = append(kept, itemID)
	}
	s.itemOrder = kept
	s.mu.Unlock()

	s.notify(Change{Entity: "list", Action: ActionDeleted, ID: id})
}

func (s *ListStore) AddItem(sess session.Context, draft model.ItemDraft) model.ListItem {
	s.mu.Lock()
	item := model.ListItem{
		ID:        s.newID(),
		ListID:    draft.ListID,
		Text:      draft.Text,
		CreatedBy: sess.UserID,
		CreatedAt: s.now().UTC(),
	}
	s.items[item.ID] = item
	s.itemOrder = append(s.itemOrder, item.ID)
	s.mu.Unlock()

	s.notify(Change{Entity: "item", Action: ActionCreated, ID: item.ID})
	return item
}

// ToggleItem flips completion: completing stamps CompletedAt with the
// current time, un-completing clears it. Unknown ids are a no-op.
func (s *ListStore) ToggleItem(id string) {
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if item.Completed {
		item.Completed = false
		item.CompletedAt = nil
	} else {
		item.Completed = true
		at := s.now().UTC()
		item.CompletedAt = &at
	}
	s.items[id] = item
	s.mu.Unlock()

	s.notify(Change{Entity: "item", Action: ActionToggled, ID: id})
}

func (s *ListStore) DeleteItem(id string) {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.items, id)
	s.itemOrder = removeID(s.itemOrder, id)
	s.mu.Unlock()

	s.notify(Change{Entity: "item", Action: ActionDeleted, ID: id})
}

// Lists returns all lists in insertion order.
func (s *ListStore) Lists() []model.List {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.List, 0, len(s.listOrder))
	for _, id := range s.listOrder {
		out = append(out, s.lists[id])
	}
	return out
}

func (s *ListStore) ListsByGroup(groupID string) []model.List {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.List
	for _, id := range s.listOrder {
		if l := s.lists[id]; l.GroupID == groupID {
			out = append(out, l)
		}
	}
	return out
}

// List returns the list with the given id, or nil.
func (s *ListStore) List(id string) *model.List {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[id]
	if !ok {
		return nil
	}
	return &l
}

// Items returns all items in insertion order.
func (s *ListStore) Items() []model.ListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ListItem, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		out = append(out, s.items[id])
	}
	return out
}

func (s *ListStore) ItemsByList(listID string) []model.ListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ListItem
	for _, id := range s.itemOrder {
		if item := s.items[id]; item.ListID == listID {
			out = append(out, item)
		}
	}
	return out
}

// Item returns the item with the given id, or nil.
func (s *ListStore) Item(id string) *model.ListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil
	}
	return &item
}
