package routeaccess

// ResolverOption defines a function signature for setting Resolver options.
type ResolverOption func(*Resolver)

// WithLoginPath sets the path unauthenticated visitors are redirected to. (default: /login)
func WithLoginPath(p string) ResolverOption {
	return ResolverOption(func(r *Resolver) {
		r.loginPath = p
	})
}

// WithLandingPath sets the path authenticated visitors land on when leaving an
// anonymous-only route without a stored return path. (default: /)
func WithLandingPath(p string) ResolverOption {
	return ResolverOption(func(r *Resolver) {
		r.landingPath = p
	})
}
