// Package routetypes defines the static description of an application route.
package routetypes

import "github.com/cccteam/routeaccess/sessioninfo"

// Visibility restricts navigation by authentication state.
type Visibility int

const (
	// Public routes are reachable with or without a session.
	Public Visibility = iota
	// RequiresAuth routes need an authenticated session.
	RequiresAuth
	// RequiresAnonymous routes are only for visitors without a session (login, register).
	RequiresAnonymous
)

// String returns the name of the visibility rule.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "Public"
	case RequiresAuth:
		return "RequiresAuth"
	case RequiresAnonymous:
		return "RequiresAnonymous"
	default:
		return "Unknown"
	}
}

// PermissionCheck decides if user may navigate to a route.
//
// It must be a pure function of user: no side effects and no reads of any
// other state. It is only called for authenticated sessions.
type PermissionCheck func(user *sessioninfo.User) bool

// Title produces the display title of a route.
type Title func() string

// Text returns a Title for a constant string.
func Text(s string) Title {
	return func() string { return s }
}

// Resolve returns the title, or "" for a nil Title.
func (t Title) Resolve() string {
	if t == nil {
		return ""
	}

	return t()
}

// Descriptor describes a route. Descriptors are built once at startup and
// are not modified afterwards.
type Descriptor struct {
	Name            string
	PathTemplate    string
	Visibility      Visibility
	PermissionCheck PermissionCheck
	Title           Title
}
