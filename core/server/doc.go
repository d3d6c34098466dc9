// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from it: listen port, optional API key,
// the route prefix images are served under and the upload size limit.
package server
