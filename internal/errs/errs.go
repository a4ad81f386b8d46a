// Package errs defines the error shapes returned to API clients.
//
// Every error that leaves the HTTP layer is converted into an *HTTPError
// so clients always receive the same JSON structure, optionally with
// field-level validation errors and an action hint.
package errs
