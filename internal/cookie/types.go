package cookie

import (
	"time"

	"github.com/cccteam/ccc"
)

// Key is a type for storing values in an encoded cookie
type Key string

const (
	// SessionID is the key used to store the SessionID in the auth cookie
	SessionID Key = "sessionID"

	// ReturnURL is the key used to store the path to return to in the navigation cookie
	ReturnURL Key = "returnURL"
)

const (
	// AuthCookieName is the default cookie name of the auth cookie
	AuthCookieName = "auth"

	// NavCookieName is the default cookie name of the navigation cookie
	NavCookieName = "NAV"

	// NavCookieExpiration is the lifetime of the navigation cookie
	NavCookieExpiration = 10 * time.Minute
)

// ValidSessionID checks that the sessionID is a valid uuid
func ValidSessionID(sessionID string) (ccc.UUID, bool) {
	sessionUUID, err := ccc.UUIDFromString(sessionID)
	if err != nil {
		return ccc.NilUUID, false
	}

	return sessionUUID, true
}
