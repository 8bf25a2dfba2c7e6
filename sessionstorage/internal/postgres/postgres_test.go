package postgres

import (
	"strings"
	"testing"
)

func TestSessionStorageDriver_SetSessionTableName(t *testing.T) {
	t.Parallel()
	c := NewSessionStorageDriver(nil)
	c.SetSessionTableName("NewSessionTable")
	if c.sessionTableName != "NewSessionTable" {
		t.Errorf("SetSessionTableName() = %v, want %v", c.sessionTableName, "NewSessionTable")
	}
	if q := c.sessionQuery(); !strings.Contains(q, `FROM "NewSessionTable" s`) {
		t.Errorf("sessionQuery() = %s, want FROM \"NewSessionTable\"", q)
	}
}

func TestSessionStorageDriver_SetUserTableName(t *testing.T) {
	t.Parallel()
	c := NewSessionStorageDriver(nil)
	c.SetUserTableName("NewUserTable")
	if c.userTableName != "NewUserTable" {
		t.Errorf("SetUserTableName() = %v, want %v", c.userTableName, "NewUserTable")
	}
	if q := c.sessionQuery(); !strings.Contains(q, `JOIN "NewUserTable" u`) {
		t.Errorf("sessionQuery() = %s, want JOIN \"NewUserTable\"", q)
	}
}
