// Package http implements the HTTP transport of the local depth stub server.
//
// It exposes the multipart upload route consumed by the capture client and
// the middleware chain around it: panic recovery, request tracing and access
// logging. Depth computation is delegated to the service layer.
package http
