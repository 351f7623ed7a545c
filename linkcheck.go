// Package linkcheck provides a same-host link health checker.
// It crawls a site breadth-first from a seed URL, verifies every discovered
// same-host link with HEAD (falling back to GET), and reports the HTTP status
// of each one.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package linkcheck
