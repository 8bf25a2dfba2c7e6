// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../internal/cookie/cookie_iface.go -destination mock_cookie/mock_cookie_iface.go
