// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the asset management routes.
//   - rayid: generates a request id (RayID) for every incoming request, stores it
//     in the context and echoes it in the X-Ray-ID response header.
package middleware
