// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the
// settings it reads: the listen port, the API key checked by the auth
// middleware and the time a report request may take.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
