// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: rejects requests without the configured X-API-Key.
//   - rayid: tags every request with a RayID, stored in the context locals
//     and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally in cmd/start.go, rayid first.
package middleware
