// Package http serves the forms over HTTP with fiber.
//
// Routes:
//
//	POST /login       submit the login form (form-encoded or JSON)
//	POST /register    submit the registration form
//	POST /feedback    evaluate a live password field event
//	GET  /session     report the current session marker
//	GET  /health/live liveness probe
//	GET  /metrics     Prometheus metrics
//
// The mode of a submission comes from the request path, the same way the
// page's form action decided it.
package http
