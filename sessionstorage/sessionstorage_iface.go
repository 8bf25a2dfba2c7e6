// Package sessionstorage reads stored sessions and the users they belong to.
// There are implementations for both Spanner and Postgres.
package sessionstorage

import (
	"context"

	"github.com/cccteam/ccc"
	"github.com/cccteam/routeaccess/sessioninfo"
	"github.com/cccteam/routeaccess/sessionstorage/internal/dbtype"
	"github.com/cccteam/routeaccess/sessionstorage/internal/postgres"
	"github.com/cccteam/routeaccess/sessionstorage/internal/spanner"
)

var (
	_ Reader = (*Postgres)(nil)
	_ Reader = (*Spanner)(nil)
)

// Reader defines an interface for reading stored sessions.
type Reader interface {
	// Session returns the session information for given sessionID. A missing
	// session is reported with an httpio not found message.
	Session(ctx context.Context, sessionID ccc.UUID) (*sessioninfo.SessionInfo, error)
}

var (
	_ db = (*spanner.SessionStorageDriver)(nil)
	_ db = (*postgres.SessionStorageDriver)(nil)
)

// db defines an interface for database operations related to session lookup.
type db interface {
	// Session returns the session joined with its user from the database for given sessionID.
	Session(ctx context.Context, sessionID ccc.UUID) (*dbtype.Session, error)
}
