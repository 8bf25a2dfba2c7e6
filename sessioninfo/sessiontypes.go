// Package sessioninfo holds the session snapshot consumed by route access decisions.
package sessioninfo

import (
	"slices"
	"time"

	"github.com/cccteam/ccc"
	"github.com/cccteam/ccc/accesstypes"
	"github.com/go-playground/errors/v5"
)

// UserType is the kind of account a user holds in the marketplace.
type UserType int

const (
	// IndividualUser is a regular customer account.
	IndividualUser UserType = iota
	// SchoolAdmin administers a school profile.
	SchoolAdmin
	// InstitutionalUser orders on behalf of an institution.
	InstitutionalUser
	// Publisher lists and manages books.
	Publisher
	// Moderator works the back-office.
	Moderator
)

var userTypeNames = [...]string{
	IndividualUser:    "INDIVIDUAL_USER",
	SchoolAdmin:       "SCHOOL_ADMIN",
	InstitutionalUser: "INSTITUTIONAL_USER",
	Publisher:         "PUBLISHER",
	Moderator:         "MODERATOR",
}

// String returns the wire name of the user type.
func (t UserType) String() string {
	if t < 0 || int(t) >= len(userTypeNames) {
		return "UNKNOWN"
	}

	return userTypeNames[t]
}

// ParseUserType parses the wire name of a user type.
func ParseUserType(s string) (UserType, error) {
	for i, name := range userTypeNames {
		if name == s {
			return UserType(i), nil
		}
	}

	return 0, errors.Newf("unknown user type %q", s)
}

// User is the identity attached to an authenticated session.
type User struct {
	ID          ccc.UUID
	Username    string
	DisplayName string
	Type        UserType
	Permissions []accesstypes.Permission
}

// HasPermission reports if the user has been granted p.
func (u *User) HasPermission(p accesstypes.Permission) bool {
	return slices.Contains(u.Permissions, p)
}

// Session is an immutable snapshot of the authentication state.
//
// A Session is replaced as a whole on login, logout or session check and is
// never modified in place.
type Session struct {
	User *User
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// New returns an authenticated session for a copy of user.
func New(user User) Session {
	user.Permissions = slices.Clone(user.Permissions)

	return Session{User: &user}
}

// Authenticated reports if a user is present.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// SessionInfo struct contains information about a stored session
type SessionInfo struct {
	ID        ccc.UUID
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Expired   bool

	// User is nil when the account behind the session is disabled.
	User *User
}
