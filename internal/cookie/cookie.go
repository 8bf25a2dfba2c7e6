// Package cookie reads and writes the encrypted cookies used for session
// lookup and navigation return state.
package cookie

import (
	"net/http"
	"time"

	"github.com/cccteam/ccc"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// Client implements reading and writing encrypted cookies
type Client struct {
	secureCookie   *securecookie.SecureCookie
	authCookieName string
	navCookieName  string
	domain         string
}

// NewCookieClient returns a new Client for the base64 encoded cookieKey.
// An empty cookieKey generates a random key.
func NewCookieClient(cookieKey string, options ...Option) (*Client, error) {
	sc, err := createSecureCookie(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "createSecureCookie()")
	}

	c := &Client{
		secureCookie:   sc,
		authCookieName: AuthCookieName,
		navCookieName:  NavCookieName,
	}
	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// ReadAuthCookie returns the session ID stored in the auth cookie.
// found is false when the cookie is absent, cannot be decoded, or holds an
// invalid session ID.
func (c *Client) ReadAuthCookie(r *http.Request) (ccc.UUID, bool) {
	cval, found := c.read(r, c.authCookieName)
	if !found {
		return ccc.NilUUID, false
	}

	return ValidSessionID(cval[SessionID])
}

// WriteReturnURL stores returnURL in the navigation cookie.
func (c *Client) WriteReturnURL(w http.ResponseWriter, returnURL string) error {
	cval := map[Key]string{
		ReturnURL: returnURL,
	}

	encoded, err := c.secureCookie.Encode(c.navCookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.navCookieName,
		Value:    encoded,
		Path:     "/",
		Domain:   c.domain,
		Expires:  time.Now().Add(NavCookieExpiration),
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ReadReturnURL returns the path stored in the navigation cookie.
func (c *Client) ReadReturnURL(r *http.Request) (string, bool) {
	cval, found := c.read(r, c.navCookieName)
	if !found {
		return "", false
	}

	returnURL, ok := cval[ReturnURL]
	if !ok || returnURL == "" {
		return "", false
	}

	return returnURL, true
}

// ClearReturnURL expires the navigation cookie.
func (c *Client) ClearReturnURL(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.navCookieName,
		Value:    "",
		Path:     "/",
		Domain:   c.domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *Client) read(r *http.Request, name string) (map[Key]string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return nil, false
	}

	cval := make(map[Key]string)
	if err := c.secureCookie.Decode(name, cookie.Value, &cval); err != nil {
		logger.FromReq(r).Error(errors.Wrapf(err, "securecookie.Decode() for cookie %s", name))

		return nil, false
	}

	return cval, true
}
