package should

import (
	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
)

type EmptyAssertions struct {
	assertions
	Subject *actionresult.EmptyResult
}

type StatusCodeAssertions struct {
	assertions
	Subject *actionresult.StatusCodeResult
}

// WithStatusCode checks the status code.
func (a *StatusCodeAssertions) WithStatusCode(expected int, because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("StatusCode"), a.Subject.StatusCode, expected, because...)
	return a
}
