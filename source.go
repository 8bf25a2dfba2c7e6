package routeaccess

import (
	"net/http"

	"github.com/cccteam/routeaccess/sessioninfo"
)

var (
	_ SessionSource = contextSource{}
)

// SessionSource supplies the session snapshot for a request.
type SessionSource interface {
	Session(r *http.Request) sessioninfo.Session
}

// contextSource reads the snapshot stored by SessionCheck. A request that
// never went through the session check is anonymous.
type contextSource struct{}

func (contextSource) Session(r *http.Request) sessioninfo.Session {
	s, ok := sessioninfo.Lookup(r.Context())
	if !ok {
		return sessioninfo.Anonymous()
	}

	return s
}
