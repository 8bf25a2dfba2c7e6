// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../sessionstorage_iface.go -destination mock_sessionstorage/mock_sessionstorage_iface.go
