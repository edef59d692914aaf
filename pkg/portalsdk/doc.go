// Package portalsdk is a Go client for the portal service. It carries the
// wire types shared between the server handlers and client code, plus a
// small HTTP client covering the public and authenticated endpoints.
package portalsdk
