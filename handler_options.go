package routeaccess

import (
	"net/http"
	"time"

	"github.com/cccteam/routeaccess/internal/cookie"
)

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// GuardOption defines the functional option type for configuring a Guard.
type GuardOption interface {
	isGuardOption()
}

// SessionCheckOption defines the functional option type for configuring a SessionCheck.
type SessionCheckOption interface {
	isSessionCheckOption()
}

// CookieOption defines a function signature for setting cookie client options.
type CookieOption func(*cookie.Client)

func (CookieOption) isGuardOption()        {}
func (CookieOption) isSessionCheckOption() {}

// WithCookieDomain sets the domain for the cookies written.
func WithCookieDomain(domain string) CookieOption {
	return CookieOption(cookie.WithCookieDomain(domain))
}

// WithAuthCookieName sets the name of the cookie holding the session ID. (default: auth)
func WithAuthCookieName(name string) CookieOption {
	return CookieOption(cookie.WithAuthCookieName(name))
}

// WithNavCookieName sets the name of the cookie holding the return path. (default: NAV)
func WithNavCookieName(name string) CookieOption {
	return CookieOption(cookie.WithNavCookieName(name))
}

// HandlerOption defines a function signature for setting the log handler.
type HandlerOption func(*LogHandler)

func (HandlerOption) isGuardOption()        {}
func (HandlerOption) isSessionCheckOption() {}

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) HandlerOption {
	return HandlerOption(func(h *LogHandler) {
		*h = l
	})
}

type guardOption func(*Guard)

func (guardOption) isGuardOption() {}

// WithSessionSource sets where the Guard reads the session snapshot from. (default: request context)
func WithSessionSource(src SessionSource) GuardOption {
	return guardOption(func(g *Guard) {
		g.source = src
	})
}

type sessionCheckOption func(*SessionCheck)

func (sessionCheckOption) isSessionCheckOption() {}

var defaultSessionTimeout = time.Minute * 10

// WithSessionTimeout sets the idle time after which a stored session is ignored. (default: 10m)
func WithSessionTimeout(d time.Duration) SessionCheckOption {
	return sessionCheckOption(func(s *SessionCheck) {
		s.sessionTimeout = d
	})
}
