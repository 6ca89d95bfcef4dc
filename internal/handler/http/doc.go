// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API of the blogging platform: registration, email confirmation, login,
// user administration and test helpers. Cross-cutting concerns such as
// bearer and Basic authentication, request tracing, access logging, CORS and
// Prometheus metrics are handled in this package before requests are
// delegated to the service layer.
package http
