package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/planna-app/planna/internal/localstore"
	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
)

// defaultUserColor is assigned to accounts until the user picks their own.
const defaultUserColor = "#FF6B6B"

// AuthStore tracks the authenticated user. It is the only store with a
// durable side effect: the user record is persisted to local storage as a
// signed snapshot so a restart can restore the identity. Storage writes run
// asynchronously and are never awaited by the in-memory mutation; write
// failures are logged and otherwise ignored.
type AuthStore struct {
	broadcaster
	mu   sync.RWMutex
	user *model.User

	storage *localstore.Store
	tokens  *session.TokenCodec
	logger  *slog.Logger
	wg      sync.WaitGroup

	now   func() time.Time
	newID func() string
}

func NewAuthStore(storage *localstore.Store, tokens *session.TokenCodec, logger *slog.Logger) *AuthStore {
	return &AuthStore{
		storage: storage,
		tokens:  tokens,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load restores the persisted identity, if any. Invalid or expired
// snapshots are discarded and the store stays anonymous.
func (s *AuthStore) Load() {
	token, ok, err := s.storage.Get(localstore.KeyUser)
	if err != nil {
		s.logger.Error("read user snapshot", "error", err)
		return
	}
	if !ok {
		return
	}

	user, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Warn("discard user snapshot", "error", err)
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.notify(Change{Entity: "user", Action: ActionRestored, ID: user.ID})
}

// Login authenticates the user. There is no credential verification in this
// design: any email/password pair succeeds and yields an identity derived
// from the email.
func (s *AuthStore) Login(email, password string) model.User {
	name, _, _ := strings.Cut(email, "@")
	user := model.User{
		ID:        s.newID(),
		Email:     email,
		Name:      name,
		Color:     defaultUserColor,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.saveSnapshotAsync(user)
	s.notify(Change{Entity: "user", Action: ActionLoggedIn, ID: user.ID})
	return user
}

// Register creates a new account and authenticates it. The password is
// hashed before the record is held in memory; it is never verified later
// and never written to storage.
func (s *AuthStore) Register(email, password, name string) model.User {
	user := model.User{
		ID:        s.newID(),
		Email:     email,
		Name:      name,
		Color:     defaultUserColor,
		CreatedAt: s.now().UTC(),
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err != nil {
		s.logger.Error("hash password", "error", err)
	} else {
		user.PasswordHash = string(hash)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.saveSnapshotAsync(user)
	s.notify(Change{Entity: "user", Action: ActionLoggedIn, ID: user.ID})
	return user
}

// UpdateUser merges the patch onto the current user. A silent no-op when
// anonymous.
func (s *AuthStore) UpdateUser(patch model.UserPatch) *model.User {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	user := *s.user
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Color != nil {
		user.Color = *patch.Color
	}
	if patch.DateOfBirth != nil {
		user.DateOfBirth = *patch.DateOfBirth
	}
	if patch.ProfilePicture != nil {
		user.ProfilePicture = *patch.ProfilePicture
	}
	s.user = &user
	s.mu.Unlock()

	s.saveSnapshotAsync(user)
	s.notify(Change{Entity: "user", Action: ActionUpdated, ID: user.ID})
	return &user
}

// Logout returns the store to the anonymous state and clears the persisted
// snapshot. A no-op when already anonymous.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	id := s.user.ID
	s.user = nil
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.storage.Delete(localstore.KeyUser); err != nil {
			s.logger.Error("clear user snapshot", "error", err)
		}
	}()

	s.notify(Change{Entity: "user", Action: ActionLoggedOut, ID: id})
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (s *AuthStore) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a user is logged in.
func (s *AuthStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Session returns the session context for the current user.
func (s *AuthStore) Session() (session.Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return session.Context{}, false
	}
	return session.Context{UserID: s.user.ID, Email: s.user.Email}, true
}

// Flush waits for in-flight storage writes. Called on shutdown so a pending
// snapshot is not lost to process exit.
func (s *AuthStore) Flush() {
	s.wg.Wait()
}

func (s *AuthStore) saveSnapshotAsync(user model.User) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		token, err := s.tokens.Issue(user)
		if err != nil {
			s.logger.Error("issue user snapshot", "error", err)
			return
		}
		if err := s.storage.Set(localstore.KeyUser, token); err != nil {
			s.logger.Error("write user snapshot", "error", err)
		}
	}()
}
