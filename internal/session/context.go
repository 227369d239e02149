// Package session carries the authenticated identity through request
// contexts and persists it as a signed snapshot token. Store mutations that
// stamp a creator take a Context explicitly; domain logic never falls back
// to an implicit current user.
package session

import "context"

type contextKey struct{}

// Context identifies the acting user for a store call.
type Context struct {
	UserID string
	Email  string
}

func WithSession(ctx context.Context, sc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

func FromContext(ctx context.Context) (Context, bool) {
	sc, ok := ctx.Value(contextKey{}).(Context)
	return sc, ok
}

func UserID(ctx context.Context) string {
	sc, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return sc.UserID
}
