package sessionstorage

import (
	"github.com/cccteam/routeaccess/sessionstorage/internal/postgres"
)

// Queryer is the subset of a pgx connection or pgxpool.Pool used for session lookup.
type Queryer = postgres.Queryer

// Postgres reads sessions from PostgreSQL.
type Postgres struct {
	driver *postgres.SessionStorageDriver
	sessionStorage
}

// NewPostgres creates a new Postgres session reader.
func NewPostgres(conn Queryer) *Postgres {
	driver := postgres.NewSessionStorageDriver(conn)

	return &Postgres{
		driver:         driver,
		sessionStorage: sessionStorage{db: driver},
	}
}

// SetSessionTableName sets the name of the session table. (default: Sessions)
func (p *Postgres) SetSessionTableName(name string) {
	p.driver.SetSessionTableName(name)
}

// SetUserTableName sets the name of the user table. (default: SessionUsers)
func (p *Postgres) SetUserTableName(name string) {
	p.driver.SetUserTableName(name)
}
