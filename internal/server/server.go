package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/planna-app/planna/internal/handler"
	"github.com/planna-app/planna/internal/localstore"
	"github.com/planna-app/planna/internal/middleware"
	"github.com/planna-app/planna/internal/session"
	"github.com/planna-app/planna/internal/store"
	ws "github.com/planna-app/planna/internal/websocket"
)

type Server struct {
	hub         *ws.Hub
	authStore   *store.AuthStore
	authH       *handler.AuthHandler
	calendarH   *handler.CalendarHandler
	listH       *handler.ListHandler
	groupH      *handler.GroupHandler
	settingsH   *handler.SettingsHandler
	tokens      *session.TokenCodec
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(storage *localstore.Store, tokens *session.TokenCodec, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	authStore := store.NewAuthStore(storage, tokens, logger.With("component", "auth_store"))
	calendarStore := store.NewCalendarStore()
	listStore := store.NewListStore()
	groupStore := store.NewGroupStore()

	// Every store mutation is fanned out to connected clients so other
	// devices stay in sync.
	broadcast := func(c store.Change) {
		hub.Broadcast(ws.NewMessage(c.Entity, c.Action, c.ID, nil))
	}
	authStore.Subscribe(broadcast)
	calendarStore.Subscribe(broadcast)
	listStore.Subscribe(broadcast)
	groupStore.Subscribe(broadcast)

	return &Server{
		hub:         hub,
		authStore:   authStore,
		authH:       handler.NewAuthHandler(authStore, tokens, logger.With("component", "auth")),
		calendarH:   handler.NewCalendarHandler(calendarStore),
		listH:       handler.NewListHandler(listStore),
		groupH:      handler.NewGroupHandler(groupStore, authStore, logger.With("component", "group")),
		settingsH:   handler.NewSettingsHandler(storage),
		tokens:      tokens,
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// AuthStore returns the auth store so callers can restore the persisted
// identity on startup and flush pending writes on shutdown.
func (s *Server) AuthStore() *store.AuthStore {
	return s.authStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes, wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.tokens)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// Profile
	mux.HandleFunc("GET /api/profile", s.authH.Profile)
	mux.HandleFunc("PUT /api/profile", s.authH.UpdateProfile)

	// Groups and members
	mux.HandleFunc("POST /api/groups", s.groupH.CreateGroup)
	mux.HandleFunc("POST /api/groups/join", s.groupH.JoinGroup)
	mux.HandleFunc("POST /api/groups/leave", s.groupH.LeaveGroup)
	mux.HandleFunc("GET /api/groups/current", s.groupH.CurrentGroup)
	mux.HandleFunc("GET /api/members", s.groupH.Members)
	mux.HandleFunc("PUT /api/members/{id}", s.groupH.UpdateMember)

	// Calendar events
	mux.HandleFunc("POST /api/events", s.calendarH.CreateEvent)
	mux.HandleFunc("GET /api/events", s.calendarH.ListEvents)
	mux.HandleFunc("GET /api/events/{id}", s.calendarH.GetEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.calendarH.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.calendarH.DeleteEvent)

	// Calendar view state
	mux.HandleFunc("GET /api/calendar/view", s.calendarH.GetView)
	mux.HandleFunc("PUT /api/calendar/view", s.calendarH.UpdateView)

	// Lists and items
	mux.HandleFunc("POST /api/lists", s.listH.CreateList)
	mux.HandleFunc("GET /api/lists", s.listH.Lists)
	mux.HandleFunc("DELETE /api/lists/{id}", s.listH.DeleteList)
	mux.HandleFunc("POST /api/lists/{list_id}/items", s.listH.CreateItem)
	mux.HandleFunc("GET /api/lists/{list_id}/items", s.listH.Items)
	mux.HandleFunc("POST /api/items/{id}/toggle", s.listH.ToggleItem)
	mux.HandleFunc("DELETE /api/items/{id}", s.listH.DeleteItem)

	// Settings
	mux.HandleFunc("GET /api/settings/notifications", s.settingsH.GetNotifications)
	mux.HandleFunc("PUT /api/settings/notifications", s.settingsH.UpdateNotifications)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
}
