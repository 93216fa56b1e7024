// Package connection talks to the Simian management server.
//
// AuthClient implements login and logout over HTTPS. Login presents the
// client certificate and reads the token cookie from the response; logout
// sends the token back as a cookie.
package connection
