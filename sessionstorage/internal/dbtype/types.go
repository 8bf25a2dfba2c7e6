// Package dbtype contains types used by the database driver packages for session storage.
package dbtype

import (
	"time"

	"github.com/cccteam/ccc"
)

// Session is a stored session joined with the user it belongs to.
type Session struct {
	ID          ccc.UUID  `spanner:"Id"          db:"Id"`
	Username    string    `spanner:"Username"    db:"Username"`
	CreatedAt   time.Time `spanner:"CreatedAt"   db:"CreatedAt"`
	UpdatedAt   time.Time `spanner:"UpdatedAt"   db:"UpdatedAt"`
	Expired     bool      `spanner:"Expired"     db:"Expired"`
	UserID      ccc.UUID  `spanner:"UserId"      db:"UserId"`
	DisplayName string    `spanner:"DisplayName" db:"DisplayName"`
	UserType    string    `spanner:"UserType"    db:"UserType"`
	Permissions []string  `spanner:"Permissions" db:"Permissions"`
	Disabled    bool      `spanner:"Disabled"    db:"Disabled"`
}
