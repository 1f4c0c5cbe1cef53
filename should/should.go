// Package should provides fluent assertions about the results returned by handlers.
//
//	should.Result(t, result).
//		BeCreatedAtRoute().
//		WithRouteName("item").
//		WithRouteValue("id", 42)
//
// Each Be method checks the kind of the result and returns a wrapper for that kind, whose
// With methods each check one property. A failed check reports one message through t.Errorf and
// calls t.FailNow, so the rest of the chain does not run. The optional because arguments at the
// end of every method are a format string and its arguments, explaining why the expectation
// holds.
//
// t can be a *testing.T, a *scope.T, or anything else that implements helpers.TestContext.
package should

import (
	"net/http"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
	"github.com/resultassert/resultassert/framework/helpers"
)

const resultLabel = "result"

// ResultAssertions is the starting point for assertions about a result.
type ResultAssertions struct {
	t       helpers.TestContext
	Subject actionresult.Result
}

// Result starts a chain of assertions about r.
func Result(t helpers.TestContext, r actionresult.Result) *ResultAssertions {
	return &ResultAssertions{t: t, Subject: r}
}

// BeKind checks only the kind of the result.
func (a *ResultAssertions) BeKind(kind actionresult.Kind, because ...interface{}) *ResultAssertions {
	a.t.Helper()
	if compare.NotNil(a.t, resultLabel, a.Subject, kind.String(), because...) {
		compare.TypeName(a.t, resultLabel, kind.String(), a.Subject.Kind().String(), because...)
	}
	return a
}

// subjectAs checks that the result has the given kind and returns it as its concrete type. If
// the check fails and the test keeps running, it returns a zero value so that the rest of the
// chain can run without a nil subject.
func subjectAs[T any, P interface {
	*T
	actionresult.Result
}](a *ResultAssertions, kind actionresult.Kind, because []interface{}) P {
	a.t.Helper()
	if r, ok := a.Subject.(P); ok && r != nil {
		return r
	}
	if compare.NotNil(a.t, resultLabel, a.Subject, kind.String(), because...) {
		compare.TypeName(a.t, resultLabel, kind.String(), a.Subject.Kind().String(), because...)
	}
	return P(new(T))
}

// BeEmpty checks that the result is a EmptyResult and returns its assertions.
func (a *ResultAssertions) BeEmpty(because ...interface{}) *EmptyAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.EmptyResult](a, actionresult.KindEmpty, because)
	return &EmptyAssertions{assertions: newAssertions(a.t, actionresult.KindEmpty), Subject: r}
}

// BeStatusCode checks that the result is a StatusCodeResult and returns its assertions.
func (a *ResultAssertions) BeStatusCode(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatusCode(actionresult.KindStatusCode.String(), because)
}

func (a *ResultAssertions) beStatusCode(prefix string, because []interface{}) *StatusCodeAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.StatusCodeResult](a, actionresult.KindStatusCode, because)
	return &StatusCodeAssertions{assertions: assertions{t: a.t, prefix: prefix}, Subject: r}
}

func (a *ResultAssertions) beStatus(prefix string, statusCode int, because []interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatusCode(prefix, because).WithStatusCode(statusCode, because...)
}

// BeOK checks for a StatusCodeResult with status 200.
func (a *ResultAssertions) BeOK(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("OkResult", http.StatusOK, because)
}

// BeNoContent checks for a StatusCodeResult with status 204.
func (a *ResultAssertions) BeNoContent(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("NoContentResult", http.StatusNoContent, because)
}

// BeNotFound checks for a StatusCodeResult with status 404.
func (a *ResultAssertions) BeNotFound(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("NotFoundResult", http.StatusNotFound, because)
}

// BeBadRequest checks for a StatusCodeResult with status 400.
func (a *ResultAssertions) BeBadRequest(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("BadRequestResult", http.StatusBadRequest, because)
}

// BeUnauthorized checks for a StatusCodeResult with status 401.
func (a *ResultAssertions) BeUnauthorized(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("UnauthorizedResult", http.StatusUnauthorized, because)
}

// BeConflict checks for a StatusCodeResult with status 409.
func (a *ResultAssertions) BeConflict(because ...interface{}) *StatusCodeAssertions {
	a.t.Helper()
	return a.beStatus("ConflictResult", http.StatusConflict, because)
}

// BeObject checks that the result is a ObjectResult and returns its assertions.
func (a *ResultAssertions) BeObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObject(actionresult.KindObject.String(), because)
}

func (a *ResultAssertions) beObject(prefix string, because []interface{}) *ObjectAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.ObjectResult](a, actionresult.KindObject, because)
	return &ObjectAssertions{assertions: assertions{t: a.t, prefix: prefix}, Subject: r}
}

func (a *ResultAssertions) beObjectStatus(prefix string, statusCode int, because []interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObject(prefix, because).WithStatusCode(statusCode, because...)
}

// BeOKObject checks for an ObjectResult with status 200.
func (a *ResultAssertions) BeOKObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObjectStatus("OkObjectResult", http.StatusOK, because)
}

// BeNotFoundObject checks for an ObjectResult with status 404.
func (a *ResultAssertions) BeNotFoundObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObjectStatus("NotFoundObjectResult", http.StatusNotFound, because)
}

// BeBadRequestObject checks for an ObjectResult with status 400.
func (a *ResultAssertions) BeBadRequestObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObjectStatus("BadRequestObjectResult", http.StatusBadRequest, because)
}

// BeConflictObject checks for an ObjectResult with status 409.
func (a *ResultAssertions) BeConflictObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObjectStatus("ConflictObjectResult", http.StatusConflict, because)
}

// BeUnprocessableEntityObject checks for an ObjectResult with status 422.
func (a *ResultAssertions) BeUnprocessableEntityObject(because ...interface{}) *ObjectAssertions {
	a.t.Helper()
	return a.beObjectStatus("UnprocessableEntityObjectResult", http.StatusUnprocessableEntity, because)
}

// BeContent checks that the result is a ContentResult and returns its assertions.
func (a *ResultAssertions) BeContent(because ...interface{}) *ContentAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.ContentResult](a, actionresult.KindContent, because)
	return &ContentAssertions{assertions: newAssertions(a.t, actionresult.KindContent), Subject: r}
}

// BeJSON checks that the result is a JsonResult and returns its assertions.
func (a *ResultAssertions) BeJSON(because ...interface{}) *JSONAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.JSONResult](a, actionresult.KindJSON, because)
	return &JSONAssertions{assertions: newAssertions(a.t, actionresult.KindJSON), Subject: r}
}

// BeCreated checks that the result is a CreatedResult and returns its assertions.
func (a *ResultAssertions) BeCreated(because ...interface{}) *CreatedAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.CreatedResult](a, actionresult.KindCreated, because)
	return &CreatedAssertions{assertions: newAssertions(a.t, actionresult.KindCreated), Subject: r}
}

// BeCreatedAtAction checks that the result is a CreatedAtActionResult and returns its assertions.
func (a *ResultAssertions) BeCreatedAtAction(because ...interface{}) *CreatedAtActionAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.CreatedAtActionResult](a, actionresult.KindCreatedAtAction, because)
	return &CreatedAtActionAssertions{assertions: newAssertions(a.t, actionresult.KindCreatedAtAction), Subject: r}
}

// BeCreatedAtRoute checks that the result is a CreatedAtRouteResult and returns its assertions.
func (a *ResultAssertions) BeCreatedAtRoute(because ...interface{}) *CreatedAtRouteAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.CreatedAtRouteResult](a, actionresult.KindCreatedAtRoute, because)
	return &CreatedAtRouteAssertions{assertions: newAssertions(a.t, actionresult.KindCreatedAtRoute), Subject: r}
}

// BeAccepted checks that the result is a AcceptedResult and returns its assertions.
func (a *ResultAssertions) BeAccepted(because ...interface{}) *AcceptedAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.AcceptedResult](a, actionresult.KindAccepted, because)
	return &AcceptedAssertions{assertions: newAssertions(a.t, actionresult.KindAccepted), Subject: r}
}

// BeAcceptedAtAction checks that the result is a AcceptedAtActionResult and returns its assertions.
func (a *ResultAssertions) BeAcceptedAtAction(because ...interface{}) *AcceptedAtActionAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.AcceptedAtActionResult](a, actionresult.KindAcceptedAtAction, because)
	return &AcceptedAtActionAssertions{assertions: newAssertions(a.t, actionresult.KindAcceptedAtAction), Subject: r}
}

// BeAcceptedAtRoute checks that the result is a AcceptedAtRouteResult and returns its assertions.
func (a *ResultAssertions) BeAcceptedAtRoute(because ...interface{}) *AcceptedAtRouteAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.AcceptedAtRouteResult](a, actionresult.KindAcceptedAtRoute, because)
	return &AcceptedAtRouteAssertions{assertions: newAssertions(a.t, actionresult.KindAcceptedAtRoute), Subject: r}
}

// BeRedirect checks that the result is a RedirectResult and returns its assertions.
func (a *ResultAssertions) BeRedirect(because ...interface{}) *RedirectAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.RedirectResult](a, actionresult.KindRedirect, because)
	return &RedirectAssertions{assertions: newAssertions(a.t, actionresult.KindRedirect), Subject: r}
}

// BeLocalRedirect checks that the result is a LocalRedirectResult and returns its assertions.
func (a *ResultAssertions) BeLocalRedirect(because ...interface{}) *LocalRedirectAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.LocalRedirectResult](a, actionresult.KindLocalRedirect, because)
	return &LocalRedirectAssertions{assertions: newAssertions(a.t, actionresult.KindLocalRedirect), Subject: r}
}

// BeRedirectToAction checks that the result is a RedirectToActionResult and returns its assertions.
func (a *ResultAssertions) BeRedirectToAction(because ...interface{}) *RedirectToActionAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.RedirectToActionResult](a, actionresult.KindRedirectToAction, because)
	return &RedirectToActionAssertions{assertions: newAssertions(a.t, actionresult.KindRedirectToAction), Subject: r}
}

// BeRedirectToRoute checks that the result is a RedirectToRouteResult and returns its assertions.
func (a *ResultAssertions) BeRedirectToRoute(because ...interface{}) *RedirectToRouteAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.RedirectToRouteResult](a, actionresult.KindRedirectToRoute, because)
	return &RedirectToRouteAssertions{assertions: newAssertions(a.t, actionresult.KindRedirectToRoute), Subject: r}
}

// BeFileContent checks that the result is a FileContentResult and returns its assertions.
func (a *ResultAssertions) BeFileContent(because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.FileContentResult](a, actionresult.KindFileContent, because)
	return &FileContentAssertions{fileAssertions: newFileAssertions(a.t, actionresult.KindFileContent, &r.FileResult), Subject: r}
}

// BeFileStream checks that the result is a FileStreamResult and returns its assertions.
func (a *ResultAssertions) BeFileStream(because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.FileStreamResult](a, actionresult.KindFileStream, because)
	return &FileStreamAssertions{fileAssertions: newFileAssertions(a.t, actionresult.KindFileStream, &r.FileResult), Subject: r}
}

// BePhysicalFile checks that the result is a PhysicalFileResult and returns its assertions.
func (a *ResultAssertions) BePhysicalFile(because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.PhysicalFileResult](a, actionresult.KindPhysicalFile, because)
	return &PhysicalFileAssertions{fileAssertions: newFileAssertions(a.t, actionresult.KindPhysicalFile, &r.FileResult), Subject: r}
}

// BeView checks that the result is a ViewResult and returns its assertions.
func (a *ResultAssertions) BeView(because ...interface{}) *ViewAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.ViewResult](a, actionresult.KindView, because)
	return &ViewAssertions{assertions: newAssertions(a.t, actionresult.KindView), Subject: r}
}

// BePartialView checks that the result is a PartialViewResult and returns its assertions.
func (a *ResultAssertions) BePartialView(because ...interface{}) *PartialViewAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.PartialViewResult](a, actionresult.KindPartialView, because)
	return &PartialViewAssertions{assertions: newAssertions(a.t, actionresult.KindPartialView), Subject: r}
}

// BeChallenge checks that the result is a ChallengeResult and returns its assertions.
func (a *ResultAssertions) BeChallenge(because ...interface{}) *ChallengeAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.ChallengeResult](a, actionresult.KindChallenge, because)
	return &ChallengeAssertions{propertiesAssertions: newPropertiesAssertions(a.t, actionresult.KindChallenge, r.Properties), Subject: r}
}

// BeForbid checks that the result is a ForbidResult and returns its assertions.
func (a *ResultAssertions) BeForbid(because ...interface{}) *ForbidAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.ForbidResult](a, actionresult.KindForbid, because)
	return &ForbidAssertions{propertiesAssertions: newPropertiesAssertions(a.t, actionresult.KindForbid, r.Properties), Subject: r}
}

// BeSignIn checks that the result is a SignInResult and returns its assertions.
func (a *ResultAssertions) BeSignIn(because ...interface{}) *SignInAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.SignInResult](a, actionresult.KindSignIn, because)
	return &SignInAssertions{propertiesAssertions: newPropertiesAssertions(a.t, actionresult.KindSignIn, r.Properties), Subject: r}
}

// BeSignOut checks that the result is a SignOutResult and returns its assertions.
func (a *ResultAssertions) BeSignOut(because ...interface{}) *SignOutAssertions {
	a.t.Helper()
	r := subjectAs[actionresult.SignOutResult](a, actionresult.KindSignOut, because)
	return &SignOutAssertions{propertiesAssertions: newPropertiesAssertions(a.t, actionresult.KindSignOut, r.Properties), Subject: r}
}
