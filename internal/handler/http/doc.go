// Package http implements the HTTP transport of the stub document server.
//
// It exposes POST /upload and POST /chat with the same wire contract as the
// real document backend, so the terminal client can be run and tested
// without it. Request tracing, access logging and response compression are
// handled here before requests reach the service layer.
package http
