package sessioninfo

import (
	"context"
	"fmt"
	"net/http"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

// CtxSession is the key used to store the Session in the context.
const CtxSession ctxKey = "session"

// NewCtx returns a copy of ctx carrying the session snapshot.
func NewCtx(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxSession, s)
}

// Lookup returns the session snapshot stored in ctx, if any.
func Lookup(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(CtxSession).(Session)

	return s, ok
}

// FromRequest returns the session snapshot from the request context.
func FromRequest(r *http.Request) Session {
	return FromCtx(r.Context())
}

// FromCtx returns the session snapshot from the context.
func FromCtx(ctx context.Context) Session {
	s, ok := Lookup(ctx)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxSession))
	}

	return s
}
