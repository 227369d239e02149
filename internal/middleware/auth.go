package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planna-app/planna/internal/session"
)

const sessionCookieName = "planna_session"

// RequireAuth validates the session token (Authorization bearer or cookie)
// and threads the resulting session.Context through the request.
func RequireAuth(tokens *session.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if cookie, err := r.Cookie(sessionCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				unauthorized(w)
				return
			}

			user, err := tokens.Parse(token)
			if err != nil {
				unauthorized(w)
				return
			}

			sc := session.Context{UserID: user.ID, Email: user.Email}
			ctx := session.WithSession(r.Context(), sc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
