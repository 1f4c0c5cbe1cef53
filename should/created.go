package should

import (
	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
)

type CreatedAssertions struct {
	assertions
	Subject *actionresult.CreatedResult
}

// WithLocation checks the Location of the new resource.
func (a *CreatedAssertions) WithLocation(expected string, because ...interface{}) *CreatedAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Location"), a.Subject.Location, expected, because...)
	return a
}

func (a *CreatedAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *CreatedAssertions) WithValue(expected interface{}, because ...interface{}) *CreatedAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *CreatedAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *CreatedAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *CreatedAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *CreatedAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

type CreatedAtActionAssertions struct {
	assertions
	Subject *actionresult.CreatedAtActionResult
}

// WithActionName checks the target action name.
func (a *CreatedAtActionAssertions) WithActionName(expected string, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ActionName"), a.Subject.ActionName, expected, because...)
	return a
}

// WithControllerName checks the target controller name.
func (a *CreatedAtActionAssertions) WithControllerName(expected string, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ControllerName"), a.Subject.ControllerName, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *CreatedAtActionAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

func (a *CreatedAtActionAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *CreatedAtActionAssertions) WithValue(expected interface{}, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *CreatedAtActionAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *CreatedAtActionAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

type CreatedAtRouteAssertions struct {
	assertions
	Subject *actionresult.CreatedAtRouteResult
}

// WithRouteName checks the route name.
func (a *CreatedAtRouteAssertions) WithRouteName(expected string, because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("RouteName"), a.Subject.RouteName, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *CreatedAtRouteAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

func (a *CreatedAtRouteAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *CreatedAtRouteAssertions) WithValue(expected interface{}, because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *CreatedAtRouteAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *CreatedAtRouteAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

type AcceptedAssertions struct {
	assertions
	Subject *actionresult.AcceptedResult
}

// WithLocation checks the Location of the new resource.
func (a *AcceptedAssertions) WithLocation(expected string, because ...interface{}) *AcceptedAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Location"), a.Subject.Location, expected, because...)
	return a
}

func (a *AcceptedAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *AcceptedAssertions) WithValue(expected interface{}, because ...interface{}) *AcceptedAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *AcceptedAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *AcceptedAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *AcceptedAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *AcceptedAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

type AcceptedAtActionAssertions struct {
	assertions
	Subject *actionresult.AcceptedAtActionResult
}

// WithActionName checks the target action name.
func (a *AcceptedAtActionAssertions) WithActionName(expected string, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ActionName"), a.Subject.ActionName, expected, because...)
	return a
}

// WithControllerName checks the target controller name.
func (a *AcceptedAtActionAssertions) WithControllerName(expected string, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ControllerName"), a.Subject.ControllerName, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *AcceptedAtActionAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

func (a *AcceptedAtActionAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *AcceptedAtActionAssertions) WithValue(expected interface{}, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *AcceptedAtActionAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *AcceptedAtActionAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}

type AcceptedAtRouteAssertions struct {
	assertions
	Subject *actionresult.AcceptedAtRouteResult
}

// WithRouteName checks the route name.
func (a *AcceptedAtRouteAssertions) WithRouteName(expected string, because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("RouteName"), a.Subject.RouteName, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *AcceptedAtRouteAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

func (a *AcceptedAtRouteAssertions) heldValue() (assertions, interface{}) { return a.assertions, a.Subject.Value }

// WithValue checks the response value with natural equality.
func (a *AcceptedAtRouteAssertions) WithValue(expected interface{}, because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	a.value(a.Subject.Value, expected, because)
	return a
}

// WithValueJSON checks that the value serializes to JSON structurally equal to expectedJSON.
func (a *AcceptedAtRouteAssertions) WithValueJSON(expectedJSON string, because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	a.valueJSON(a.Subject.Value, expectedJSON, because)
	return a
}

// WithValueAt checks the part of the value found at a gjson path.
func (a *AcceptedAtRouteAssertions) WithValueAt(path string, expected interface{}, because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	a.valueAt(a.Subject.Value, path, expected, because)
	return a
}
