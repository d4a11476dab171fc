// Package http implements the HTTP transport layer of the pinvent server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API consumed by the web client. Cross-cutting concerns such as the session
// cookie guard, request tracing, access logging, metrics and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
