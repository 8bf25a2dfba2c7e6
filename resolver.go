// Package routeaccess decides if a session may navigate to an application
// route and, when it may, produces the concrete path and title for it.
package routeaccess

import (
	"github.com/cccteam/routeaccess/pathtemplate"
	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
)

const (
	defaultLoginPath   = "/login"
	defaultLandingPath = "/"
)

// Resolver evaluates route access rules. It only holds immutable
// configuration and is safe for concurrent use.
type Resolver struct {
	loginPath   string
	landingPath string
}

// NewResolver returns a Resolver configured by opts.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		loginPath:   defaultLoginPath,
		landingPath: defaultLandingPath,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// LoginPath returns the path unauthenticated visitors are sent to.
func (r *Resolver) LoginPath() string {
	return r.loginPath
}

// LandingPath returns the default path for authenticated visitors leaving an anonymous-only route.
func (r *Resolver) LandingPath() string {
	return r.landingPath
}

// Check applies the visibility and permission rules of route to session.
// The first matching rule wins.
func (r *Resolver) Check(route routetypes.Descriptor, session sessioninfo.Session) DenialReason {
	switch {
	case route.Visibility == routetypes.RequiresAnonymous && session.Authenticated():
		return AlreadyAuthenticated
	case route.Visibility == routetypes.RequiresAuth && !session.Authenticated():
		return Unauthenticated
	case session.Authenticated() && route.PermissionCheck != nil && !route.PermissionCheck(session.User):
		return Forbidden
	}

	return NotDenied
}

// Resolve decides if session may navigate to route and, if so, expands the
// route path with params.
//
// A denial is reported through the returned Decision. The error is a
// *pathtemplate.MissingParameterError when params lacks a placeholder the
// template requires, and a *pathtemplate.MalformedPlaceholderError for a
// broken template.
func (r *Resolver) Resolve(route routetypes.Descriptor, session sessioninfo.Session, params map[string]string) (Decision, error) {
	if reason := r.Check(route, session); reason != NotDenied {
		return Denied(reason), nil
	}

	path, err := pathtemplate.Expand(route.PathTemplate, params)
	if err != nil {
		return Decision{}, err
	}

	return Allowed(Target{Path: path, Title: route.Title.Resolve()}), nil
}
