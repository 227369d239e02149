package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planna-app/planna/internal/joincode"
	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
)

// joinedGroupName labels a group entered via code. With no backend there is
// no lookup of the code's real group, so the joined record is synthesized
// locally around the code itself.
const joinedGroupName = "Joined Group"

// GroupStore owns the session's current group and its member roster.
type GroupStore struct {
	broadcaster
	mu      sync.RWMutex
	current *model.Group
	members map[string]model.GroupMember
	order   []string

	now   func() time.Time
	newID func() string
}

func NewGroupStore() *GroupStore {
	return &GroupStore{
		members: make(map[string]model.GroupMember),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CreateGroup mints a join code and makes the new group current. The caller
// becomes its creator; enrolling the creator as a member is a separate
// AddMember call.
func (s *GroupStore) CreateGroup(sess session.Context, name string) (model.Group, error) {
	code, err := joincode.Generate()
	if err != nil {
		return model.Group{}, err
	}

	s.mu.Lock()
	g := model.Group{
		ID:        s.newID(),
		Name:      name,
		Code:      code,
		CreatedBy: sess.UserID,
		CreatedAt: s.now().UTC(),
	}
	s.current = &g
	s.mu.Unlock()

	s.notify(Change{Entity: "group", Action: ActionCreated, ID: g.ID})
	return g, nil
}

// JoinGroup makes the group behind the given code current.
func (s *GroupStore) JoinGroup(sess session.Context, code string) model.Group {
	s.mu.Lock()
	g := model.Group{
		ID:        s.newID(),
		Name:      joinedGroupName,
		Code:      code,
		CreatedAt: s.now().UTC(),
	}
	s.current = &g
	s.mu.Unlock()

	s.notify(Change{Entity: "group", Action: ActionJoined, ID: g.ID})
	return g
}

// LeaveGroup clears the current group. A no-op when there is none.
func (s *GroupStore) LeaveGroup() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	id := s.current.ID
	s.current = nil
	s.mu.Unlock()

	s.notify(Change{Entity: "group", Action: ActionLeft, ID: id})
}

// AddMember enrolls a user in the current group. Returns nil without effect
// when no group is current.
func (s *GroupStore) AddMember(userID, name, color string) *model.GroupMember {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	m := model.GroupMember{
		ID:      s.newID(),
		UserID:  userID,
		GroupID: s.current.ID,
		Name:    name,
		Color:   color,
	}
	s.members[m.ID] = m
	s.order = append(s.order, m.ID)
	s.mu.Unlock()

	s.notify(Change{Entity: "member", Action: ActionCreated, ID: m.ID})
	return &m
}

// UpdateMember merges the patch onto the member. Unknown ids are a no-op.
func (s *GroupStore) UpdateMember(id string, patch model.MemberPatch) {
	s.mu.Lock()
	m, ok := s.members[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Color != nil {
		m.Color = *patch.Color
	}
	s.members[id] = m
	s.mu.Unlock()

	s.notify(Change{Entity: "member", Action: ActionUpdated, ID: id})
}

// CurrentGroup returns the current group, or nil when the session has none.
func (s *GroupStore) CurrentGroup() *model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	g := *s.current
	return &g
}

// Members returns the roster in insertion order.
func (s *GroupStore) Members() []model.GroupMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.GroupMember, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.members[id])
	}
	return out
}

// Member returns the member with the given id, or nil.
func (s *GroupStore) Member(id string) *model.GroupMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return nil
	}
	return &m
}
