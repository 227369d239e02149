package store

import (
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/planna-app/planna/internal/localstore"
	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
)

func setupAuthStore(t *testing.T) (*AuthStore, *localstore.Store) {
	t.Helper()
	storage, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open test storage: %v", err)
	}
	t.Cleanup(func() { storage.Close() })

	tokens := session.NewTokenCodec("test-secret", time.Hour)
	return NewAuthStore(storage, tokens, slog.Default()), storage
}

func TestLoginAlwaysSucceeds(t *testing.T) {
	s, _ := setupAuthStore(t)

	if s.Authenticated() {
		t.Fatal("expected anonymous on start")
	}

	user := s.Login("john@example.com", "whatever")
	if user.Name != "john" {
		t.Errorf("name = %q, want local part %q", user.Name, "john")
	}
	if user.Color != defaultUserColor {
		t.Errorf("color = %q, want %q", user.Color, defaultUserColor)
	}
	if !s.Authenticated() {
		t.Error("expected authenticated after login")
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	s, _ := setupAuthStore(t)

	user := s.Register("sarah@example.com", "hunter2-long", "Sarah")
	if user.PasswordHash == "" {
		t.Fatal("expected password hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2-long")); err != nil {
		t.Errorf("hash does not match password: %v", err)
	}
}

func TestSnapshotPersistsAcrossRestart(t *testing.T) {
	s, storage := setupAuthStore(t)

	s.Login("john@example.com", "pw")
	s.Flush()

	token, ok, err := storage.Get(localstore.KeyUser)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if !ok || token == "" {
		t.Fatal("expected persisted snapshot")
	}

	// Simulate process restart: fresh store, same storage
	restarted := NewAuthStore(storage, session.NewTokenCodec("test-secret", time.Hour), slog.Default())
	restarted.Load()

	user := restarted.CurrentUser()
	if user == nil {
		t.Fatal("expected restored user")
	}
	if user.Email != "john@example.com" {
		t.Errorf("email = %q, want %q", user.Email, "john@example.com")
	}
}

func TestLoadRejectsTamperedSnapshot(t *testing.T) {
	s, storage := setupAuthStore(t)

	if err := storage.Set(localstore.KeyUser, "garbage-token"); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	s.Load()
	if s.Authenticated() {
		t.Error("tampered snapshot must leave the store anonymous")
	}
}

func TestUpdateUser(t *testing.T) {
	s, _ := setupAuthStore(t)

	// Anonymous: silent no-op
	name := "X"
	if got := s.UpdateUser(model.UserPatch{Name: &name}); got != nil {
		t.Fatal("expected nil update while anonymous")
	}

	s.Login("john@example.com", "pw")

	dob := "1990-04-02"
	color := "#4ECDC4"
	updated := s.UpdateUser(model.UserPatch{DateOfBirth: &dob, Color: &color})
	if updated == nil {
		t.Fatal("expected updated user")
	}
	if updated.DateOfBirth != dob {
		t.Errorf("date_of_birth = %q, want %q", updated.DateOfBirth, dob)
	}
	if updated.Color != color {
		t.Errorf("color = %q, want %q", updated.Color, color)
	}
	// Unpatched fields survive
	if updated.Email != "john@example.com" {
		t.Errorf("email = %q, want unchanged", updated.Email)
	}
}

func TestLogoutClearsSnapshot(t *testing.T) {
	s, storage := setupAuthStore(t)

	s.Login("john@example.com", "pw")
	s.Flush()
	s.Logout()
	s.Flush()

	if s.Authenticated() {
		t.Error("expected anonymous after logout")
	}
	_, ok, err := storage.Get(localstore.KeyUser)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if ok {
		t.Error("expected snapshot cleared after logout")
	}

	// Logging out while anonymous is a silent no-op
	notified := false
	s.Subscribe(func(Change) { notified = true })
	s.Logout()
	if notified {
		t.Error("no-op logout must not notify")
	}
}

func TestAuthNotifications(t *testing.T) {
	s, _ := setupAuthStore(t)

	var actions []string
	s.Subscribe(func(c Change) { actions = append(actions, c.Action) })

	s.Login("john@example.com", "pw")
	name := "Johnny"
	s.UpdateUser(model.UserPatch{Name: &name})
	s.Logout()
	s.Flush()

	want := []string{ActionLoggedIn, ActionUpdated, ActionLoggedOut}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("actions[%d] = %q, want %q", i, actions[i], want[i])
		}
	}
}

func TestSessionContext(t *testing.T) {
	s, _ := setupAuthStore(t)

	if _, ok := s.Session(); ok {
		t.Fatal("expected no session while anonymous")
	}

	user := s.Login("john@example.com", "pw")
	sc, ok := s.Session()
	if !ok {
		t.Fatal("expected session after login")
	}
	if sc.UserID != user.ID {
		t.Errorf("session user id = %q, want %q", sc.UserID, user.ID)
	}
}
