package should

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
)

type ObjectAssertions struct {
	assertions
	Subject *actionresult.ObjectResult
}

func (a *ObjectAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithStatusCode checks the status code. An ObjectResult with no status code of its own does not
// match any expected status.
func (a *ObjectAssertions) WithStatusCode(expected int, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.statusCode(a.Subject.StatusCode, expected, because)
	return a
}

// WithContentTypes checks the content types, ignoring their order.
func (a *ObjectAssertions) WithContentTypes(expected []string, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	compare.Set(a.t, a.label("ContentTypes"), a.Subject.ContentTypes, expected, because...)
	return a
}

// WithValue checks the response value with natural equality.
func (a *ObjectAssertions) WithValue(expected interface{}, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON equivalent to expectedJSON.
func (a *ObjectAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks one part of the value's JSON representation, selected with a gjson path such
// as "items.0.id".
func (a *ObjectAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

// WithValueMatchingSchema checks the value against a JSON schema.
func (a *ObjectAssertions) WithValueMatchingSchema(schema string, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.valueSchema(a.Subject.Value, schema, because)
	return a
}

// WithValueMatching checks the value against a go-test-helpers matcher.
func (a *ObjectAssertions) WithValueMatching(matcher m.Matcher, because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	a.valueMatching(a.Subject.Value, matcher, because)
	return a
}

type ContentAssertions struct {
	assertions
	Subject *actionresult.ContentResult
}

// WithContent checks the response body text.
func (a *ContentAssertions) WithContent(expected string, because ...interface{}) *ContentAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Content"), a.Subject.Content, expected, because...)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *ContentAssertions) WithContentType(expected string, because ...interface{}) *ContentAssertions {
	a.t.Helper()
	a.contentType(a.Subject.ContentType, expected, because)
	return a
}

// WithStatusCode checks the status code.
func (a *ContentAssertions) WithStatusCode(expected int, because ...interface{}) *ContentAssertions {
	a.t.Helper()
	a.statusCode(a.Subject.StatusCode, expected, because)
	return a
}

type JSONAssertions struct {
	assertions
	Subject *actionresult.JSONResult
}

func (a *JSONAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *JSONAssertions) WithValue(expected interface{}, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *JSONAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *JSONAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

// WithValueMatchingSchema checks the value against a JSON schema.
func (a *JSONAssertions) WithValueMatchingSchema(schema string, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.valueSchema(a.Subject.Value, schema, because)
	return a
}

// WithValueMatching checks the value against a go-test-helpers matcher.
func (a *JSONAssertions) WithValueMatching(matcher m.Matcher, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.valueMatching(a.Subject.Value, matcher, because)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *JSONAssertions) WithContentType(expected string, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.contentType(a.Subject.ContentType, expected, because)
	return a
}

// WithStatusCode checks the status code.
func (a *JSONAssertions) WithStatusCode(expected int, because ...interface{}) *JSONAssertions {
	a.t.Helper()
	a.statusCode(a.Subject.StatusCode, expected, because)
	return a
}
