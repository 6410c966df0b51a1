// Package http provides the HTTP adapter for the devserve resolution policy.
//
// The package routes GET and HEAD requests through a Service (implemented by
// devserve.Resolver) and serves the resolved file with http.ServeContent,
// which handles byte-exact bodies, Content-Type headers, and HEAD body
// suppression with identical headers.
//
// # Features
//
//   - Single resolution handler for every GET and HEAD path
//   - Per-request diagnostic logging with generated request ids
//   - Request path validation (null bytes, control characters, bad UTF-8)
//   - JSON error responses for malformed paths and I/O failures
//   - HTML 404 page when the fallback document itself is missing
//   - Configurable CORS support
//
// # Usage
//
// Create a handler with HandlerConfig:
//
//	resolver, err := devserve.NewResolver(store, devserve.ResolverConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handlerCfg := http.HandlerConfig{}
//	handler := http.NewHandler(&handlerCfg, resolver)
//	router := handler.Router()
//	http.ListenAndServe(":8080", router)
//
// The service parameter must implement the Service interface with an Open
// method resolving a request path to a file.
//
// # Error Semantics
//
// A fallback response is not an error: unknown routes serve the entry
// document with status 200 so client-side routing works. 404 is reserved
// for the case where the fallback document itself is absent. Filesystem
// failures other than "not found" surface as 500 responses; nothing is
// retried.
package http
