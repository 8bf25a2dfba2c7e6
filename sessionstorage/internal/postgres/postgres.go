// Package postgres implements the session storage driver for PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/routeaccess/sessionstorage/internal/dbtype"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
)

// Queryer is the subset of a pgx connection or pool used by the driver.
type Queryer interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// SessionStorageDriver represents the session storage implementation for PostgreSQL.
type SessionStorageDriver struct {
	conn             Queryer
	sessionTableName string
	userTableName    string
}

// NewSessionStorageDriver creates a new SessionStorageDriver
func NewSessionStorageDriver(conn Queryer) *SessionStorageDriver {
	return &SessionStorageDriver{
		conn:             conn,
		sessionTableName: "Sessions",
		userTableName:    "SessionUsers",
	}
}

// SetSessionTableName sets the name of the session table.
func (d *SessionStorageDriver) SetSessionTableName(name string) {
	d.sessionTableName = name
}

// SetUserTableName sets the name of the user table.
func (d *SessionStorageDriver) SetUserTableName(name string) {
	d.userTableName = name
}

// Session returns the session and its user from the database for given sessionID
func (d *SessionStorageDriver) Session(ctx context.Context, sessionID ccc.UUID) (*dbtype.Session, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	i := &dbtype.Session{}
	if err := pgxscan.Get(ctx, d.conn, i, d.sessionQuery(), sessionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpio.NewNotFoundMessagef("session %s not found in database", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to scan row for session %s", sessionID)
	}

	return i, nil
}

func (d *SessionStorageDriver) sessionQuery() string {
	return fmt.Sprintf(`
		SELECT
			s."Id", s."Username", s."CreatedAt", s."UpdatedAt", s."Expired",
			u."Id" AS "UserId", u."DisplayName", u."UserType", u."Permissions", u."Disabled"
		FROM %q s
		JOIN %q u ON u."Username" = s."Username"
		WHERE s."Id" = $1
	`, d.sessionTableName, d.userTableName)
}
