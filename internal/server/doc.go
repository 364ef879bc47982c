// Package server runs the stub document server over HTTP and shuts it down
// gracefully when its context is cancelled.
package server
