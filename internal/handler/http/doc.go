// Package http implements the read-only HTTP API of the composer.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging and method checks are
// handled in this package before requests are delegated to the service layer.
package http
