// Package http implements the HTTP transport layer of the application.
//
// It exposes the single GraphQL endpoint, a health probe, and middleware for
// request tracing and access logging. Authentication is not an HTTP concern
// here: the raw Authorization header is forwarded into the request context
// and enforced per GraphQL field by the graph package.
package http
