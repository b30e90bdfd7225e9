// Package server owns the process lifecycle of the HTTP transport: startup,
// signal handling, and graceful shutdown.
package server
