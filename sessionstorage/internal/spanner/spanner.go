// Package spanner provides the session storage driver for Spanner.
package spanner

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/routeaccess/sessionstorage/internal/dbtype"
	"github.com/cccteam/spxscan"
	"github.com/go-playground/errors/v5"
	"google.golang.org/grpc/codes"
)

// SessionStorageDriver represents the session storage implementation for Spanner.
type SessionStorageDriver struct {
	spanner          *spanner.Client
	sessionTableName string
	userTableName    string
}

// NewSessionStorageDriver creates a new SessionStorageDriver
func NewSessionStorageDriver(client *spanner.Client) *SessionStorageDriver {
	return &SessionStorageDriver{
		spanner:          client,
		sessionTableName: "Sessions",
		userTableName:    "SessionUsers",
	}
}

// SetSessionTableName sets the name of the session table.
func (s *SessionStorageDriver) SetSessionTableName(name string) {
	s.sessionTableName = name
}

// SetUserTableName sets the name of the user table.
func (s *SessionStorageDriver) SetUserTableName(name string) {
	s.userTableName = name
}

// Session returns the session and its user from the database for given sessionID
func (s *SessionStorageDriver) Session(ctx context.Context, sessionID ccc.UUID) (*dbtype.Session, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	stmt := s.sessionStatement(sessionID)

	session := &dbtype.Session{}
	if err := spxscan.Get(ctx, s.spanner.Single(), session, stmt); err != nil {
		if errors.Is(err, spxscan.ErrNotFound) || spanner.ErrCode(err) == codes.NotFound {
			return nil, httpio.NewNotFoundMessagef("session %q not found", sessionID)
		}

		return nil, errors.Wrapf(err, "failed to scan row for session %q", sessionID)
	}

	return session, nil
}

func (s *SessionStorageDriver) sessionStatement(sessionID ccc.UUID) spanner.Statement {
	stmt := spanner.NewStatement(fmt.Sprintf(`
		SELECT
			s.Id,
			s.Username,
			s.CreatedAt,
			s.UpdatedAt,
			s.Expired,
			u.Id AS UserId,
			u.DisplayName,
			u.UserType,
			u.Permissions,
			u.Disabled
		FROM %s s
		JOIN %s u ON u.Username = s.Username
		WHERE s.Id = @id
	`, s.sessionTableName, s.userTableName))
	stmt.Params["id"] = sessionID

	return stmt
}
