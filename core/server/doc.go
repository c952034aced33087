// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines
// the settings it reads: the listen port, the API key protecting the API and
// the interval of background rescans.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/serve.
package server
