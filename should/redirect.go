package should

import (
	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
)

type RedirectAssertions struct {
	assertions
	Subject *actionresult.RedirectResult
}

// WithURL checks the redirect URL.
func (a *RedirectAssertions) WithURL(expected string, because ...interface{}) *RedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("URL"), a.Subject.URL, expected, because...)
	return a
}

// WithPermanent checks whether the redirect is permanent.
func (a *RedirectAssertions) WithPermanent(expected bool, because ...interface{}) *RedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Permanent"), a.Subject.Permanent, expected, because...)
	return a
}

// WithPreserveMethod checks whether the redirect preserves the request method.
func (a *RedirectAssertions) WithPreserveMethod(expected bool, because ...interface{}) *RedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("PreserveMethod"), a.Subject.PreserveMethod, expected, because...)
	return a
}

type LocalRedirectAssertions struct {
	assertions
	Subject *actionresult.LocalRedirectResult
}

// WithLocalURL checks the local redirect URL.
func (a *LocalRedirectAssertions) WithLocalURL(expected string, because ...interface{}) *LocalRedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("LocalURL"), a.Subject.LocalURL, expected, because...)
	return a
}

// WithPermanent checks whether the redirect is permanent.
func (a *LocalRedirectAssertions) WithPermanent(expected bool, because ...interface{}) *LocalRedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Permanent"), a.Subject.Permanent, expected, because...)
	return a
}

// WithPreserveMethod checks whether the redirect preserves the request method.
func (a *LocalRedirectAssertions) WithPreserveMethod(expected bool, because ...interface{}) *LocalRedirectAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("PreserveMethod"), a.Subject.PreserveMethod, expected, because...)
	return a
}

type RedirectToActionAssertions struct {
	assertions
	Subject *actionresult.RedirectToActionResult
}

// WithActionName checks the target action name.
func (a *RedirectToActionAssertions) WithActionName(expected string, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ActionName"), a.Subject.ActionName, expected, because...)
	return a
}

// WithControllerName checks the target controller name.
func (a *RedirectToActionAssertions) WithControllerName(expected string, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("ControllerName"), a.Subject.ControllerName, expected, because...)
	return a
}

// WithFragment checks the URL fragment.
func (a *RedirectToActionAssertions) WithFragment(expected string, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Fragment"), a.Subject.Fragment, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *RedirectToActionAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

// WithPermanent checks whether the redirect is permanent.
func (a *RedirectToActionAssertions) WithPermanent(expected bool, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Permanent"), a.Subject.Permanent, expected, because...)
	return a
}

// WithPreserveMethod checks whether the redirect preserves the request method.
func (a *RedirectToActionAssertions) WithPreserveMethod(expected bool, because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("PreserveMethod"), a.Subject.PreserveMethod, expected, because...)
	return a
}

type RedirectToRouteAssertions struct {
	assertions
	Subject *actionresult.RedirectToRouteResult
}

// WithRouteName checks the route name.
func (a *RedirectToRouteAssertions) WithRouteName(expected string, because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("RouteName"), a.Subject.RouteName, expected, because...)
	return a
}

// WithFragment checks the URL fragment.
func (a *RedirectToRouteAssertions) WithFragment(expected string, because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Fragment"), a.Subject.Fragment, expected, because...)
	return a
}

// WithRouteValue checks one of the route values. A missing key is reported separately from a
// different value.
func (a *RedirectToRouteAssertions) WithRouteValue(key string, expected interface{}, because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	a.routeValue(a.Subject.RouteValues, key, expected, because)
	return a
}

// WithPermanent checks whether the redirect is permanent.
func (a *RedirectToRouteAssertions) WithPermanent(expected bool, because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("Permanent"), a.Subject.Permanent, expected, because...)
	return a
}

// WithPreserveMethod checks whether the redirect preserves the request method.
func (a *RedirectToRouteAssertions) WithPreserveMethod(expected bool, because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("PreserveMethod"), a.Subject.PreserveMethod, expected, because...)
	return a
}
