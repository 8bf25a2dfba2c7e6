package routeaccess

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/routeaccess/internal/cookie"
	"github.com/cccteam/routeaccess/pathtemplate"
	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

const ctxTarget ctxKey = "target"

// TargetFromCtx returns the target resolved by Guard.Protect.
func TargetFromCtx(ctx context.Context) (Target, bool) {
	t, ok := ctx.Value(ctxTarget).(Target)

	return t, ok
}

// Guard applies route access decisions to HTTP requests.
type Guard struct {
	resolver *Resolver
	source   SessionSource
	cookie   cookie.Handler
	handle   LogHandler
}

// NewGuard creates a Guard using resolver for decisions. cookieKey is the
// base64 key for the navigation cookie; an empty key generates a random one.
func NewGuard(resolver *Resolver, cookieKey string, options ...GuardOption) (*Guard, error) {
	cookieClient, err := cookie.NewCookieClient(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "cookie.NewCookieClient()")
	}

	g := &Guard{
		resolver: resolver,
		source:   contextSource{},
		cookie:   cookieClient,
		handle:   httpio.Log,
	}

	for _, opt := range options {
		switch o := any(opt).(type) {
		case CookieOption:
			o(cookieClient)
		case HandlerOption:
			o(&g.handle)
		case guardOption:
			o(g)
		}
	}

	return g, nil
}

// Protect returns middleware that only lets requests through when the
// session may navigate to route. Path parameters are taken from the chi
// route context, so the middleware must run after routing (r.With or
// Guard.Handle).
//
// Unauthenticated visitors are redirected to the login path with the
// requested path kept in the navigation cookie. Authenticated visitors of an
// anonymous-only route are redirected to the stored path or the landing
// path. Forbidden users get a 403 message in place.
func (g *Guard) Protect(route routetypes.Descriptor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return g.handle(func(w http.ResponseWriter, r *http.Request) error {
			ctx, span := ccc.StartTrace(r.Context())
			defer span.End()

			session := g.source.Session(r)

			decision, err := g.resolver.Resolve(route, session, urlParams(r))
			if err != nil {
				return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrapf(err, "Resolver.Resolve() for route %s", route.Name))
			}

			if target, ok := decision.Target(); ok {
				next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxTarget, target)))

				return nil
			}

			return g.deny(w, r.WithContext(ctx), route, session, decision.Reason())
		})
	}
}

// deny answers a refused request. session must be the snapshot the decision
// was made on.
func (g *Guard) deny(w http.ResponseWriter, r *http.Request, route routetypes.Descriptor, session sessioninfo.Session, reason DenialReason) error {
	ctx := r.Context()

	nav := NavigationState{RequestedPath: r.URL.RequestURI()}
	if reason == AlreadyAuthenticated {
		if cameFrom, ok := g.cookie.ReadReturnURL(r); ok {
			nav.CameFrom = cameFrom
		}
	}

	redirect, ok := g.resolver.RedirectTarget(route, session, nav)
	if !ok {
		return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewForbiddenMessage(fmt.Sprintf("access to %s is not permitted", route.Name)))
	}

	switch reason {
	case Unauthenticated:
		if err := g.cookie.WriteReturnURL(w, redirect.ReturnTo); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "cookie.Handler.WriteReturnURL()"))
		}
	case AlreadyAuthenticated:
		g.cookie.ClearReturnURL(w)
	}

	logger.FromCtx(ctx).Infof("route %s denied (%s), redirecting to %s", route.Name, reason, redirect.Path)
	http.Redirect(w, r, redirect.Path, http.StatusFound)

	return nil
}

// Handle mounts h on router at the chi pattern of route, behind Protect(route).
func (g *Guard) Handle(router chi.Router, route routetypes.Descriptor, h http.Handler) {
	router.With(g.Protect(route)).Handle(pathtemplate.ChiPattern(route.PathTemplate), h)
}

// NavLinks is the handler listing the routes the current session can
// navigate to without path parameters.
func (g *Guard) NavLinks(routes ...routetypes.Descriptor) http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := ccc.StartTrace(r.Context())
		defer span.End()

		return httpio.NewEncoder(w).Ok(g.resolver.Links(routes, g.source.Session(r)))
	})
}

// urlParams collects the chi URL parameters of r.
func urlParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		v := rctx.URLParams.Values[i]
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(v); err == nil {
				v = unescaped
			}
		}
		params[k] = v
	}

	return params
}
