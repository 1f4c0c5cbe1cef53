package should

import (
	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
)

type ViewAssertions struct {
	assertions
	Subject *actionresult.ViewResult
}

func (a *ViewAssertions) heldModel() (assertions, interface{}) { return a.assertions, a.Subject.Model }

// WithViewName checks the view name.
func (a *ViewAssertions) WithViewName(expected string, because ...interface{}) *ViewAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ViewName"), a.Subject.ViewName, expected, because...)
	return a
}

// WithViewData checks one ViewData entry.
func (a *ViewAssertions) WithViewData(key string, expected interface{}, because ...interface{}) *ViewAssertions {
	a.t.Helper()
	compare.KeyValue(a.t, a.label("ViewData"), a.Subject.ViewData, key, expected, because...)
	return a
}

// WithTempData checks one TempData entry.
func (a *ViewAssertions) WithTempData(key string, expected interface{}, because ...interface{}) *ViewAssertions {
	a.t.Helper()
	compare.KeyValue(a.t, a.label("TempData"), a.Subject.TempData, key, expected, because...)
	return a
}

// WithStatusCode checks the status code.
func (a *ViewAssertions) WithStatusCode(expected int, because ...interface{}) *ViewAssertions {
	a.t.Helper()
	a.statusCode(a.Subject.StatusCode, expected, because)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *ViewAssertions) WithContentType(expected string, because ...interface{}) *ViewAssertions {
	a.t.Helper()
	a.contentType(a.Subject.ContentType, expected, because)
	return a
}

type PartialViewAssertions struct {
	assertions
	Subject *actionresult.PartialViewResult
}

func (a *PartialViewAssertions) heldModel() (assertions, interface{}) { return a.assertions, a.Subject.Model }

// WithViewName checks the view name.
func (a *PartialViewAssertions) WithViewName(expected string, because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ViewName"), a.Subject.ViewName, expected, because...)
	return a
}

// WithViewData checks one ViewData entry.
func (a *PartialViewAssertions) WithViewData(key string, expected interface{}, because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	compare.KeyValue(a.t, a.label("ViewData"), a.Subject.ViewData, key, expected, because...)
	return a
}

// WithTempData checks one TempData entry.
func (a *PartialViewAssertions) WithTempData(key string, expected interface{}, because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	compare.KeyValue(a.t, a.label("TempData"), a.Subject.TempData, key, expected, because...)
	return a
}

// WithStatusCode checks the status code.
func (a *PartialViewAssertions) WithStatusCode(expected int, because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	a.statusCode(a.Subject.StatusCode, expected, because)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *PartialViewAssertions) WithContentType(expected string, because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	a.contentType(a.Subject.ContentType, expected, because)
	return a
}
