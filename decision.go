package routeaccess

// DenialReason tells why navigation was refused.
type DenialReason int

const (
	// NotDenied means navigation is permitted.
	NotDenied DenialReason = iota
	// Unauthenticated means the route requires a session and there is none.
	Unauthenticated
	// AlreadyAuthenticated means the route is for anonymous visitors only.
	AlreadyAuthenticated
	// Forbidden means the user failed the route permission check.
	Forbidden
)

func (d DenialReason) String() string {
	switch d {
	case NotDenied:
		return "NotDenied"
	case Unauthenticated:
		return "Unauthenticated"
	case AlreadyAuthenticated:
		return "AlreadyAuthenticated"
	case Forbidden:
		return "Forbidden"
	default:
		return "Unknown"
	}
}

// Target is a resolved navigation target.
type Target struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// Decision is the outcome of resolving a route: either an allowed Target or
// a DenialReason.
type Decision struct {
	reason DenialReason
	target Target
}

// Allowed returns a Decision permitting navigation to t.
func Allowed(t Target) Decision {
	return Decision{target: t}
}

// Denied returns a Decision refusing navigation for reason.
func Denied(reason DenialReason) Decision {
	return Decision{reason: reason}
}

// Allowed reports if navigation is permitted.
func (d Decision) Allowed() bool {
	return d.reason == NotDenied
}

// Reason returns why navigation was refused, or NotDenied.
func (d Decision) Reason() DenialReason {
	return d.reason
}

// Target returns the resolved target when navigation is permitted.
func (d Decision) Target() (Target, bool) {
	if !d.Allowed() {
		return Target{}, false
	}

	return d.target, true
}
