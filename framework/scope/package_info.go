// Package scope runs named checks in a way that is similar to Go's testing package, but as
// regular application code rather than inside "go test". A *T satisfies helpers.TestContext, so
// the same assertions that are used in Go tests can be used by the resultcheck runner.
package scope
