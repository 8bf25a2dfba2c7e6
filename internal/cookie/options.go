package cookie

// Option defines a function signature for setting cookie client options.
type Option func(*Client)

// WithAuthCookieName sets the name of the auth cookie holding the session ID.
func WithAuthCookieName(name string) Option {
	return Option(func(c *Client) {
		c.authCookieName = name
	})
}

// WithNavCookieName sets the name of the navigation cookie holding the return path.
func WithNavCookieName(name string) Option {
	return Option(func(c *Client) {
		c.navCookieName = name
	})
}

// WithCookieDomain sets the domain for the cookies written by the client.
func WithCookieDomain(domain string) Option {
	return Option(func(c *Client) {
		c.domain = domain
	})
}
