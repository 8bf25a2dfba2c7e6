package spanner

import (
	"strings"
	"testing"

	"github.com/cccteam/ccc"
)

func TestSessionStorageDriver_sessionStatement(t *testing.T) {
	t.Parallel()

	id := ccc.Must(ccc.UUIDFromString("92922509-82d2-4bc7-853a-d73b8926a55f"))

	c := NewSessionStorageDriver(nil)
	c.SetSessionTableName("AppSessions")
	c.SetUserTableName("AppUsers")

	stmt := c.sessionStatement(id)
	if !strings.Contains(stmt.SQL, "FROM AppSessions s") {
		t.Errorf("SQL = %s, want FROM AppSessions", stmt.SQL)
	}
	if !strings.Contains(stmt.SQL, "JOIN AppUsers u") {
		t.Errorf("SQL = %s, want JOIN AppUsers", stmt.SQL)
	}
	if got := stmt.Params["id"]; got != id {
		t.Errorf("Params[id] = %v, want %v", got, id)
	}
}
