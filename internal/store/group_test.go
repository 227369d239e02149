package store

import (
	"regexp"
	"testing"

	"github.com/planna-app/planna/internal/model"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestCreateGroup(t *testing.T) {
	s := NewGroupStore()

	g, err := s.CreateGroup(testSession, "Family")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if !codePattern.MatchString(g.Code) {
		t.Errorf("code = %q, want 6 chars of A-Z0-9", g.Code)
	}
	if g.CreatedBy != "u-1" {
		t.Errorf("created_by = %q, want %q", g.CreatedBy, "u-1")
	}

	current := s.CurrentGroup()
	if current == nil || current.ID != g.ID {
		t.Errorf("current group = %v, want %q", current, g.ID)
	}
}

func TestJoinAndLeaveGroup(t *testing.T) {
	s := NewGroupStore()

	g := s.JoinGroup(testSession, "FAM123")
	if g.Code != "FAM123" {
		t.Errorf("code = %q, want %q", g.Code, "FAM123")
	}
	if s.CurrentGroup() == nil {
		t.Fatal("expected current group after join")
	}

	s.LeaveGroup()
	if s.CurrentGroup() != nil {
		t.Error("expected no current group after leave")
	}

	// Leaving with no group is a silent no-op
	notified := false
	s.Subscribe(func(Change) { notified = true })
	s.LeaveGroup()
	if notified {
		t.Error("no-op leave must not notify")
	}
}

func TestAddAndUpdateMember(t *testing.T) {
	s := NewGroupStore()

	if m := s.AddMember("u-2", "Sarah", "#4ECDC4"); m != nil {
		t.Fatal("adding a member with no current group should be a no-op")
	}

	g, err := s.CreateGroup(testSession, "Family")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	m := s.AddMember("u-2", "Sarah", "#4ECDC4")
	if m == nil {
		t.Fatal("expected member")
	}
	if m.GroupID != g.ID {
		t.Errorf("group_id = %q, want %q", m.GroupID, g.ID)
	}

	color := "#45B7D1"
	s.UpdateMember(m.ID, model.MemberPatch{Color: &color})

	got := s.Member(m.ID)
	if got.Color != "#45B7D1" {
		t.Errorf("color = %q, want %q", got.Color, "#45B7D1")
	}
	if got.Name != "Sarah" {
		t.Errorf("name = %q, want untouched %q", got.Name, "Sarah")
	}

	// Unknown member id is a silent no-op
	name := "x"
	s.UpdateMember("missing", model.MemberPatch{Name: &name})
	if len(s.Members()) != 1 {
		t.Errorf("expected 1 member, got %d", len(s.Members()))
	}
}

func TestMembersInsertionOrder(t *testing.T) {
	s := NewGroupStore()

	if _, err := s.CreateGroup(testSession, "Family"); err != nil {
		t.Fatalf("create group: %v", err)
	}
	s.AddMember("u-1", "John", "#FF6B6B")
	s.AddMember("u-2", "Sarah", "#4ECDC4")
	s.AddMember("u-3", "Mike", "#45B7D1")

	members := s.Members()
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	want := []string{"John", "Sarah", "Mike"}
	for i, name := range want {
		if members[i].Name != name {
			t.Errorf("members[%d].Name = %q, want %q", i, members[i].Name, name)
		}
	}
}
