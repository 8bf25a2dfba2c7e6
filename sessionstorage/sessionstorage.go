package sessionstorage

import (
	"context"

	"github.com/cccteam/ccc"
	"github.com/cccteam/ccc/accesstypes"
	"github.com/cccteam/logger"
	"github.com/cccteam/routeaccess/sessioninfo"
	"github.com/cccteam/routeaccess/sessionstorage/internal/dbtype"
	"github.com/go-playground/errors/v5"
)

// sessionStorage converts database rows into session information for every driver
type sessionStorage struct {
	db db
}

// Session returns the session information from the database for given sessionID
func (s *sessionStorage) Session(ctx context.Context, sessionID ccc.UUID) (*sessioninfo.SessionInfo, error) {
	ctx, span := ccc.StartTrace(ctx)
	defer span.End()

	si, err := s.db.Session(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "db.Session()")
	}

	info := &sessioninfo.SessionInfo{
		ID:        si.ID,
		Username:  si.Username,
		CreatedAt: si.CreatedAt,
		UpdatedAt: si.UpdatedAt,
		Expired:   si.Expired,
	}

	if si.Disabled {
		logger.FromCtx(ctx).Infof("user %s is disabled, session %s is treated as anonymous", si.Username, si.ID)

		return info, nil
	}

	user, err := userFromRow(si)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user for session %s", si.ID)
	}
	info.User = user

	return info, nil
}

func userFromRow(si *dbtype.Session) (*sessioninfo.User, error) {
	userType, err := sessioninfo.ParseUserType(si.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "sessioninfo.ParseUserType()")
	}

	perms := make([]accesstypes.Permission, 0, len(si.Permissions))
	for _, p := range si.Permissions {
		perms = append(perms, accesstypes.Permission(p))
	}

	return &sessioninfo.User{
		ID:          si.UserID,
		Username:    si.Username,
		DisplayName: si.DisplayName,
		Type:        userType,
		Permissions: perms,
	}, nil
}
