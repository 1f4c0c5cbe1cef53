package should

import (
	"encoding/json"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// assertions is the state shared by every wrapper: where to report failures, and the name that
// labels are prefixed with.
type assertions struct {
	t      helpers.TestContext
	prefix string
}

func newAssertions(t helpers.TestContext, kind actionresult.Kind) assertions {
	return assertions{t: t, prefix: kind.String()}
}

func (a assertions) label(field string) string {
	return a.prefix + "." + field
}

func (a assertions) statusCode(actual opt.Maybe[int], expected int, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.label("StatusCode"), actual.Interface(), expected, because...)
}

func (a assertions) contentType(actual, expected string, because []interface{}) {
	a.t.Helper()
	compare.EqualFold(a.t, a.label("ContentType"), actual, expected, because...)
}

func (a assertions) value(actual, expected interface{}, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.label("Value"), actual, expected, because...)
}

func (a assertions) valueJSON(actual interface{}, expectedJSON string, because []interface{}) {
	a.t.Helper()
	compare.JSONEqual(a.t, a.label("Value"), actual, json.RawMessage(expectedJSON), because...)
}

func (a assertions) valueAt(actual interface{}, path string, expected interface{}, because []interface{}) {
	a.t.Helper()
	compare.JSONPath(a.t, a.label("Value"), actual, path, expected, because...)
}

func (a assertions) valueSchema(actual interface{}, schema string, because []interface{}) {
	a.t.Helper()
	compare.JSONSchema(a.t, a.label("Value"), actual, schema, because...)
}

func (a assertions) valueMatching(actual interface{}, matcher m.Matcher, because []interface{}) {
	a.t.Helper()
	compare.Matches(a.t, a.label("Value"), actual, matcher, because...)
}

func (a assertions) routeValue(values actionresult.RouteValues, key string, expected interface{}, because []interface{}) {
	a.t.Helper()
	compare.KeyValue(a.t, a.label("RouteValues"), values, key, expected, because...)
}

// valueHolder is implemented by the wrappers of result kinds that carry a Value.
type valueHolder interface {
	heldValue() (assertions, interface{})
}

// ValueAs checks that the Value of the result is of type T and returns it.
//
//	order := should.ValueAs[Order](should.Result(t, result).BeOKObject())
func ValueAs[T any](a valueHolder) T {
	base, value := a.heldValue()
	base.t.Helper()
	narrowed, _ := compare.Type[T](base.t, base.label("Value"), value)
	return narrowed
}

// ErrorAs checks that the Value of an object result is of type T, typically an error type, and
// returns it. The label refers to the value as Error, for instance "BadRequestObjectResult.Error".
func ErrorAs[T any](a *ObjectAssertions) T {
	a.t.Helper()
	narrowed, _ := compare.Type[T](a.t, a.label("Error"), a.Subject.Value)
	return narrowed
}

// modelHolder is implemented by the wrappers of view results.
type modelHolder interface {
	heldModel() (assertions, interface{})
}

// ModelAs checks that the Model of a view result is of type T and returns it.
func ModelAs[T any](a modelHolder) T {
	base, model := a.heldModel()
	base.t.Helper()
	narrowed, _ := compare.Type[T](base.t, base.label("Model"), model)
	return narrowed
}
