// Package http implements the HTTP transport layer of the signup server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Tracing, logging, compression, and integrity-checking
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http
