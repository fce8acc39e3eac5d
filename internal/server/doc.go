// Package server runs the HTTP transport of the local depth stub server.
//
// It handles startup, signal handling and graceful shutdown.
package server
