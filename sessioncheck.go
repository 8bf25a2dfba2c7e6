package routeaccess

import (
	"context"
	"net/http"
	"time"

	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/routeaccess/internal/cookie"
	"github.com/cccteam/routeaccess/sessioninfo"
	"github.com/cccteam/routeaccess/sessionstorage"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel/attribute"
)

// SessionCheck loads the session snapshot for each request and stores it in
// the request context for Guard.
type SessionCheck struct {
	storage        sessionstorage.Reader
	cookie         cookie.Handler
	sessionTimeout time.Duration
	handle         LogHandler
}

// NewSessionCheck creates a SessionCheck reading sessions from storage.
// cookieKey is the base64 key of the auth cookie written at login.
func NewSessionCheck(storage sessionstorage.Reader, cookieKey string, options ...SessionCheckOption) (*SessionCheck, error) {
	cookieClient, err := cookie.NewCookieClient(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "cookie.NewCookieClient()")
	}

	s := &SessionCheck{
		storage:        storage,
		cookie:         cookieClient,
		sessionTimeout: defaultSessionTimeout,
		handle:         httpio.Log,
	}

	for _, opt := range options {
		switch o := any(opt).(type) {
		case CookieOption:
			o(cookieClient)
		case HandlerOption:
			o(&s.handle)
		case sessionCheckOption:
			o(s)
		}
	}

	return s, nil
}

// CheckSession resolves the session of the request. Requests without a
// valid, live session continue as anonymous.
func (s *SessionCheck) CheckSession(next http.Handler) http.Handler {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := ccc.StartTrace(r.Context())
		defer span.End()

		ctx, err := s.CheckSessionAPI(ctx, r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		next.ServeHTTP(w, r.WithContext(ctx))

		return nil
	})
}

// CheckSessionAPI exposes the internals of the CheckSession handler for use with the API interface
func (s *SessionCheck) CheckSessionAPI(ctx context.Context, r *http.Request) (context.Context, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	sessionID, found := s.cookie.ReadAuthCookie(r)
	if !found {
		return sessioninfo.NewCtx(ctx, sessioninfo.Anonymous()), nil
	}

	sessInfo, err := s.storage.Session(ctx, sessionID)
	if err != nil {
		if httpio.HasNotFound(err) {
			logger.FromCtx(ctx).Infof("session %s not found", sessionID)

			return sessioninfo.NewCtx(ctx, sessioninfo.Anonymous()), nil
		}

		return ctx, errors.Wrap(err, "sessionstorage.Reader.Session()")
	}

	switch {
	case sessInfo.Expired || time.Since(sessInfo.UpdatedAt) > s.sessionTimeout:
		logger.FromCtx(ctx).Infof("session %s expired", sessionID)

		return sessioninfo.NewCtx(ctx, sessioninfo.Anonymous()), nil
	case sessInfo.User == nil:
		return sessioninfo.NewCtx(ctx, sessioninfo.Anonymous()), nil
	}

	span.SetAttributes(attribute.String("username", sessInfo.Username), attribute.String("user.type", sessInfo.User.Type.String()))

	// Add user to logging context
	l := logger.FromCtx(ctx).
		AddRequestAttribute("username", sessInfo.Username).
		WithAttributes().AddAttribute("username", sessInfo.Username).Logger()
	ctx = logger.NewCtx(ctx, l)

	return sessioninfo.NewCtx(ctx, sessioninfo.New(*sessInfo.User)), nil
}
