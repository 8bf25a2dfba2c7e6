//go:build !insecurecookie

package cookie

// secureCookie controls the Secure flag on written cookies.
// Build with the insecurecookie tag for local development over plain http.
func secureCookie() bool {
	return true
}
