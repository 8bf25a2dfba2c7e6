package sessionstorage

import (
	cloudspanner "cloud.google.com/go/spanner"
	"github.com/cccteam/routeaccess/sessionstorage/internal/spanner"
)

// Spanner reads sessions from Spanner.
type Spanner struct {
	driver *spanner.SessionStorageDriver
	sessionStorage
}

// NewSpanner creates a new Spanner session reader.
func NewSpanner(client *cloudspanner.Client) *Spanner {
	driver := spanner.NewSessionStorageDriver(client)

	return &Spanner{
		driver:         driver,
		sessionStorage: sessionStorage{db: driver},
	}
}

// SetSessionTableName sets the name of the session table. (default: Sessions)
func (s *Spanner) SetSessionTableName(name string) {
	s.driver.SetSessionTableName(name)
}

// SetUserTableName sets the name of the user table. (default: SessionUsers)
func (s *Spanner) SetUserTableName(name string) {
	s.driver.SetUserTableName(name)
}
