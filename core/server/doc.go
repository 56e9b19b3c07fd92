// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key checked by the auth
// middleware, and the request body limit.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber.
package server
