package routeaccess

import (
	"github.com/cccteam/routeaccess/pathtemplate"
	"github.com/cccteam/routeaccess/routetypes"
	"github.com/cccteam/routeaccess/sessioninfo"
)

// Link is a navigation entry the session may follow.
type Link struct {
	Name string `json:"name"`
	Target
}

// Links returns a Link for every route in routes that session may navigate
// to without path parameters, preserving order.
func (r *Resolver) Links(routes []routetypes.Descriptor, session sessioninfo.Session) []Link {
	links := make([]Link, 0, len(routes))
	for _, route := range routes {
		if len(pathtemplate.Required(route.PathTemplate)) > 0 {
			continue
		}

		decision, err := r.Resolve(route, session, nil)
		if err != nil {
			continue
		}
		if target, ok := decision.Target(); ok {
			links = append(links, Link{Name: route.Name, Target: target})
		}
	}

	return links
}
