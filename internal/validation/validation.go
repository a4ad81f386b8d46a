// Package validation binds request payloads and turns validator failures
// into 400 responses with one entry per offending field.
package validation
