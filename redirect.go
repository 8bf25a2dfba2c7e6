package routeaccess

import (
	"strings"

	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
)

// NavigationState carries what the navigation layer knows about the current
// request when computing a redirect.
type NavigationState struct {
	// RequestedPath is the path the visitor asked for.
	RequestedPath string
	// CameFrom is a previously stored path to return to, if any.
	CameFrom string
}

// Redirect is where a denied visitor should be sent.
type Redirect struct {
	Path string
	// ReturnTo is the path to come back to after the redirect completes.
	ReturnTo string
}

// RedirectTarget returns where to send a visitor denied access to route.
// It returns false when there is nothing to redirect: access is allowed, or
// the user is forbidden and the caller renders a message in place.
func (r *Resolver) RedirectTarget(route routetypes.Descriptor, session sessioninfo.Session, nav NavigationState) (Redirect, bool) {
	switch r.Check(route, session) {
	case Unauthenticated:
		return Redirect{Path: r.loginPath, ReturnTo: nav.RequestedPath}, true
	case AlreadyAuthenticated:
		if isLocalPath(nav.CameFrom) {
			return Redirect{Path: nav.CameFrom}, true
		}

		return Redirect{Path: r.landingPath}, true
	}

	return Redirect{}, false
}

// isLocalPath reports if p stays on this origin.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
