// Package session provides the Session aggregate backing the mobile API's
// bearer-token authentication. Sessions are created at login, validated on
// every request, refreshed on activity, and swept by a background job once
// expired or logged out.
package session
