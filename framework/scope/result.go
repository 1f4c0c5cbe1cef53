package scope

import (
	"strings"
)

// ID is the full name of a check: the names of its parent scopes followed by its own name.
type ID []string

// String returns the names joined by "/", the form used by filters and failure records.
func (id ID) String() string {
	return strings.Join(id, "/")
}

// Plus returns a new ID for a child scope.
func (id ID) Plus(name string) ID {
	return append(append(ID(nil), id...), name)
}

// Results is the outcome of a Run: every scope that ran, in the order that they finished, and
// the ones that failed.
type Results struct {
	Checks   []CheckResult
	Failures []CheckResult
}

// CheckResult is the outcome of one scope.
type CheckResult struct {
	ID      ID
	Errors  []error
	Skipped bool
}

// OK returns true if nothing failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Failed returns true if the check reported any errors.
func (r CheckResult) Failed() bool {
	return len(r.Errors) != 0
}
