package should

import (
	"time"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// propertiesAssertions checks the AuthenticationProperties of an authentication result. A
// result with no properties is treated like one with empty properties.
type propertiesAssertions struct {
	assertions
	props *actionresult.AuthenticationProperties
}

func newPropertiesAssertions(t helpers.TestContext, kind actionresult.Kind,
	props *actionresult.AuthenticationProperties) propertiesAssertions {
	if props == nil {
		props = &actionresult.AuthenticationProperties{}
	}
	return propertiesAssertions{assertions: newAssertions(t, kind), props: props}
}

func (a propertiesAssertions) propertyLabel(name string) string {
	return a.label("Properties." + name)
}

func (a propertiesAssertions) redirectURIIs(expected string, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.propertyLabel("RedirectURI"), a.props.RedirectURI, expected, because...)
}

func (a propertiesAssertions) isPersistentIs(expected bool, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.propertyLabel("IsPersistent"), a.props.IsPersistent, expected, because...)
}

func (a propertiesAssertions) issuedIs(expected time.Time, because []interface{}) {
	a.t.Helper()
	compare.Time(a.t, a.propertyLabel("IssuedUTC"), a.props.IssuedUTC(), opt.Timestamp(expected), because...)
}

func (a propertiesAssertions) expiresIs(expected time.Time, because []interface{}) {
	a.t.Helper()
	compare.Time(a.t, a.propertyLabel("ExpiresUTC"), a.props.ExpiresUTC(), opt.Timestamp(expected), because...)
}

func (a propertiesAssertions) allowRefreshIs(expected bool, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.propertyLabel("AllowRefresh"), a.props.AllowRefresh.Interface(), expected, because...)
}

func (a propertiesAssertions) itemIs(key, expected string, because []interface{}) {
	a.t.Helper()
	compare.KeyValue(a.t, a.propertyLabel("Items"), a.props.Items, key, expected, because...)
}

func (a propertiesAssertions) schemesAre(actual, expected []string, because []interface{}) {
	a.t.Helper()
	compare.Set(a.t, a.label("AuthenticationSchemes"), actual, expected, because...)
}

func (a propertiesAssertions) schemesContain(actual []string, expected string, because []interface{}) {
	a.t.Helper()
	compare.Contains(a.t, a.label("AuthenticationSchemes"), actual, expected, because...)
}

type ChallengeAssertions struct {
	propertiesAssertions
	Subject *actionresult.ChallengeResult
}

// WithAuthenticationSchemes checks the authentication schemes, ignoring their order.
func (a *ChallengeAssertions) WithAuthenticationSchemes(expected []string, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.schemesAre(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// ContainAuthenticationScheme checks that the scheme is one of the authentication schemes.
func (a *ChallengeAssertions) ContainAuthenticationScheme(expected string, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.schemesContain(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// WithRedirectURI checks the RedirectURI authentication property.
func (a *ChallengeAssertions) WithRedirectURI(expected string, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.redirectURIIs(expected, because)
	return a
}

// WithIsPersistent checks the IsPersistent authentication property.
func (a *ChallengeAssertions) WithIsPersistent(expected bool, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.isPersistentIs(expected, because)
	return a
}

// WithIssuedUTC checks the issue time to the second. A zero expected time means there should be
// no issue time.
func (a *ChallengeAssertions) WithIssuedUTC(expected time.Time, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.issuedIs(expected, because)
	return a
}

// WithExpiresUTC checks the expiration time to the second. A zero expected time means there
// should be no expiration time.
func (a *ChallengeAssertions) WithExpiresUTC(expected time.Time, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.expiresIs(expected, because)
	return a
}

// WithAllowRefresh checks the AllowRefresh authentication property.
func (a *ChallengeAssertions) WithAllowRefresh(expected bool, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.allowRefreshIs(expected, because)
	return a
}

// WithItem checks one entry of the authentication property items.
func (a *ChallengeAssertions) WithItem(key, expected string, because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	a.itemIs(key, expected, because)
	return a
}

type ForbidAssertions struct {
	propertiesAssertions
	Subject *actionresult.ForbidResult
}

// WithAuthenticationSchemes checks the authentication schemes, ignoring their order.
func (a *ForbidAssertions) WithAuthenticationSchemes(expected []string, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.schemesAre(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// ContainAuthenticationScheme checks that the scheme is one of the authentication schemes.
func (a *ForbidAssertions) ContainAuthenticationScheme(expected string, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.schemesContain(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// WithRedirectURI checks the RedirectURI authentication property.
func (a *ForbidAssertions) WithRedirectURI(expected string, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.redirectURIIs(expected, because)
	return a
}

// WithIsPersistent checks the IsPersistent authentication property.
func (a *ForbidAssertions) WithIsPersistent(expected bool, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.isPersistentIs(expected, because)
	return a
}

// WithIssuedUTC checks the issue time to the second. A zero expected time means there should be
// no issue time.
func (a *ForbidAssertions) WithIssuedUTC(expected time.Time, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.issuedIs(expected, because)
	return a
}

// WithExpiresUTC checks the expiration time to the second. A zero expected time means there
// should be no expiration time.
func (a *ForbidAssertions) WithExpiresUTC(expected time.Time, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.expiresIs(expected, because)
	return a
}

// WithAllowRefresh checks the AllowRefresh authentication property.
func (a *ForbidAssertions) WithAllowRefresh(expected bool, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.allowRefreshIs(expected, because)
	return a
}

// WithItem checks one entry of the authentication property items.
func (a *ForbidAssertions) WithItem(key, expected string, because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	a.itemIs(key, expected, because)
	return a
}

type SignOutAssertions struct {
	propertiesAssertions
	Subject *actionresult.SignOutResult
}

// WithAuthenticationSchemes checks the authentication schemes, ignoring their order.
func (a *SignOutAssertions) WithAuthenticationSchemes(expected []string, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.schemesAre(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// ContainAuthenticationScheme checks that the scheme is one of the authentication schemes.
func (a *SignOutAssertions) ContainAuthenticationScheme(expected string, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.schemesContain(a.Subject.AuthenticationSchemes, expected, because)
	return a
}

// WithRedirectURI checks the RedirectURI authentication property.
func (a *SignOutAssertions) WithRedirectURI(expected string, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.redirectURIIs(expected, because)
	return a
}

// WithIsPersistent checks the IsPersistent authentication property.
func (a *SignOutAssertions) WithIsPersistent(expected bool, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.isPersistentIs(expected, because)
	return a
}

// WithIssuedUTC checks the issue time to the second. A zero expected time means there should be
// no issue time.
func (a *SignOutAssertions) WithIssuedUTC(expected time.Time, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.issuedIs(expected, because)
	return a
}

// WithExpiresUTC checks the expiration time to the second. A zero expected time means there
// should be no expiration time.
func (a *SignOutAssertions) WithExpiresUTC(expected time.Time, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.expiresIs(expected, because)
	return a
}

// WithAllowRefresh checks the AllowRefresh authentication property.
func (a *SignOutAssertions) WithAllowRefresh(expected bool, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.allowRefreshIs(expected, because)
	return a
}

// WithItem checks one entry of the authentication property items.
func (a *SignOutAssertions) WithItem(key, expected string, because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	a.itemIs(key, expected, because)
	return a
}

type SignInAssertions struct {
	propertiesAssertions
	Subject *actionresult.SignInResult
}

// WithAuthenticationScheme checks the scheme used to sign in.
func (a *SignInAssertions) WithAuthenticationScheme(expected string, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("AuthenticationScheme"), a.Subject.AuthenticationScheme, expected, because...)
	return a
}

// WithPrincipal checks that the result signs in exactly the given principal. Principals are
// compared by identity.
func (a *SignInAssertions) WithPrincipal(expected *actionresult.Principal, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	compare.Same(a.t, a.label("Principal"), a.Subject.Principal, expected, because...)
	return a
}

// WithRedirectURI checks the RedirectURI authentication property.
func (a *SignInAssertions) WithRedirectURI(expected string, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.redirectURIIs(expected, because)
	return a
}

// WithIsPersistent checks the IsPersistent authentication property.
func (a *SignInAssertions) WithIsPersistent(expected bool, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.isPersistentIs(expected, because)
	return a
}

// WithIssuedUTC checks the issue time to the second. A zero expected time means there should be
// no issue time.
func (a *SignInAssertions) WithIssuedUTC(expected time.Time, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.issuedIs(expected, because)
	return a
}

// WithExpiresUTC checks the expiration time to the second. A zero expected time means there
// should be no expiration time.
func (a *SignInAssertions) WithExpiresUTC(expected time.Time, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.expiresIs(expected, because)
	return a
}

// WithAllowRefresh checks the AllowRefresh authentication property.
func (a *SignInAssertions) WithAllowRefresh(expected bool, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.allowRefreshIs(expected, because)
	return a
}

// WithItem checks one entry of the authentication property items.
func (a *SignInAssertions) WithItem(key, expected string, because ...interface{}) *SignInAssertions {
	a.t.Helper()
	a.itemIs(key, expected, because)
	return a
}
