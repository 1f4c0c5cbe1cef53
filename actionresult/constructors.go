package actionresult

import (
	"io"
	"net/http"

	"github.com/resultassert/resultassert/framework/opt"
)

func Empty() *EmptyResult { return &EmptyResult{} }

func StatusCode(statusCode int) *StatusCodeResult {
	return &StatusCodeResult{StatusCode: statusCode}
}

func Ok() *StatusCodeResult           { return StatusCode(http.StatusOK) }
func NoContent() *StatusCodeResult    { return StatusCode(http.StatusNoContent) }
func NotFound() *StatusCodeResult     { return StatusCode(http.StatusNotFound) }
func BadRequest() *StatusCodeResult   { return StatusCode(http.StatusBadRequest) }
func Unauthorized() *StatusCodeResult { return StatusCode(http.StatusUnauthorized) }
func Conflict() *StatusCodeResult     { return StatusCode(http.StatusConflict) }

// Object creates an ObjectResult with no status code of its own; it is sent as 200.
func Object(value interface{}, options ...Option) *ObjectResult {
	o := applyOptions(options)
	return &ObjectResult{Value: value, StatusCode: o.StatusCode, ContentTypes: o.ContentTypes}
}

func objectWithStatus(statusCode int, value interface{}, options []Option) *ObjectResult {
	r := Object(value, options...)
	r.StatusCode = opt.Some(statusCode)
	return r
}

func OkObject(value interface{}, options ...Option) *ObjectResult {
	return objectWithStatus(http.StatusOK, value, options)
}

func NotFoundObject(value interface{}, options ...Option) *ObjectResult {
	return objectWithStatus(http.StatusNotFound, value, options)
}

// BadRequestObject creates a 400 result whose value is typically an error.
func BadRequestObject(value interface{}, options ...Option) *ObjectResult {
	return objectWithStatus(http.StatusBadRequest, value, options)
}

func ConflictObject(value interface{}, options ...Option) *ObjectResult {
	return objectWithStatus(http.StatusConflict, value, options)
}

func UnprocessableEntityObject(value interface{}, options ...Option) *ObjectResult {
	return objectWithStatus(http.StatusUnprocessableEntity, value, options)
}

func Content(content, contentType string, options ...Option) *ContentResult {
	o := applyOptions(options)
	return &ContentResult{Content: content, ContentType: contentType, StatusCode: o.StatusCode}
}

func JSON(value interface{}, options ...Option) *JSONResult {
	o := applyOptions(options)
	return &JSONResult{Value: value, ContentType: o.contentType(), StatusCode: o.StatusCode}
}

func Created(location string, value interface{}) *CreatedResult {
	return &CreatedResult{Location: location, Value: value}
}

func CreatedAtAction(actionName, controllerName string, routeValues RouteValues, value interface{}) *CreatedAtActionResult {
	return &CreatedAtActionResult{
		ActionName:     actionName,
		ControllerName: controllerName,
		RouteValues:    routeValues,
		Value:          value,
	}
}

func CreatedAtRoute(routeName string, routeValues RouteValues, value interface{}) *CreatedAtRouteResult {
	return &CreatedAtRouteResult{RouteName: routeName, RouteValues: routeValues, Value: value}
}

func Accepted(location string, value interface{}) *AcceptedResult {
	return &AcceptedResult{Location: location, Value: value}
}

func AcceptedAtAction(actionName, controllerName string, routeValues RouteValues, value interface{}) *AcceptedAtActionResult {
	return &AcceptedAtActionResult{
		ActionName:     actionName,
		ControllerName: controllerName,
		RouteValues:    routeValues,
		Value:          value,
	}
}

func AcceptedAtRoute(routeName string, routeValues RouteValues, value interface{}) *AcceptedAtRouteResult {
	return &AcceptedAtRouteResult{RouteName: routeName, RouteValues: routeValues, Value: value}
}

// Redirect creates a temporary redirect to an absolute or relative URL. Use WithPermanent and
// WithPreserveMethod to select the other redirect status codes.
func Redirect(url string, options ...Option) *RedirectResult {
	o := applyOptions(options)
	return &RedirectResult{URL: url, Permanent: o.Permanent, PreserveMethod: o.PreserveMethod}
}

func RedirectPermanent(url string, options ...Option) *RedirectResult {
	return Redirect(url, append(options, WithPermanent())...)
}

func LocalRedirect(localURL string, options ...Option) *LocalRedirectResult {
	o := applyOptions(options)
	return &LocalRedirectResult{LocalURL: localURL, Permanent: o.Permanent, PreserveMethod: o.PreserveMethod}
}

func RedirectToAction(actionName, controllerName string, routeValues RouteValues, options ...Option) *RedirectToActionResult {
	o := applyOptions(options)
	return &RedirectToActionResult{
		ActionName:     actionName,
		ControllerName: controllerName,
		Fragment:       o.Fragment,
		RouteValues:    routeValues,
		Permanent:      o.Permanent,
		PreserveMethod: o.PreserveMethod,
	}
}

func RedirectToRoute(routeName string, routeValues RouteValues, options ...Option) *RedirectToRouteResult {
	o := applyOptions(options)
	return &RedirectToRouteResult{
		RouteName:      routeName,
		Fragment:       o.Fragment,
		RouteValues:    routeValues,
		Permanent:      o.Permanent,
		PreserveMethod: o.PreserveMethod,
	}
}

func File(contents []byte, contentType string, options ...Option) *FileContentResult {
	o := applyOptions(options)
	return &FileContentResult{FileResult: o.fileResult(contentType), FileContents: contents}
}

func FileStream(stream io.Reader, contentType string, options ...Option) *FileStreamResult {
	o := applyOptions(options)
	return &FileStreamResult{FileResult: o.fileResult(contentType), FileStream: stream}
}

func PhysicalFile(fileName, contentType string, options ...Option) *PhysicalFileResult {
	o := applyOptions(options)
	return &PhysicalFileResult{FileResult: o.fileResult(contentType), FileName: fileName}
}

func View(viewName string, model interface{}, options ...Option) *ViewResult {
	o := applyOptions(options)
	return &ViewResult{
		ViewName:    viewName,
		ViewData:    o.ViewData,
		TempData:    o.TempData,
		Model:       model,
		StatusCode:  o.StatusCode,
		ContentType: o.contentType(),
	}
}

func PartialView(viewName string, model interface{}, options ...Option) *PartialViewResult {
	o := applyOptions(options)
	return &PartialViewResult{
		ViewName:    viewName,
		ViewData:    o.ViewData,
		TempData:    o.TempData,
		Model:       model,
		StatusCode:  o.StatusCode,
		ContentType: o.contentType(),
	}
}

func Challenge(schemes ...string) *ChallengeResult {
	return &ChallengeResult{AuthenticationSchemes: schemes}
}

func ChallengeWithProperties(props *AuthenticationProperties, schemes ...string) *ChallengeResult {
	return &ChallengeResult{AuthenticationSchemes: schemes, Properties: props}
}

func Forbid(schemes ...string) *ForbidResult {
	return &ForbidResult{AuthenticationSchemes: schemes}
}

func ForbidWithProperties(props *AuthenticationProperties, schemes ...string) *ForbidResult {
	return &ForbidResult{AuthenticationSchemes: schemes, Properties: props}
}

func SignIn(principal *Principal, scheme string, options ...Option) *SignInResult {
	o := applyOptions(options)
	return &SignInResult{AuthenticationScheme: scheme, Principal: principal, Properties: o.Properties}
}

func SignOut(schemes ...string) *SignOutResult {
	return &SignOutResult{AuthenticationSchemes: schemes}
}

func SignOutWithProperties(props *AuthenticationProperties, schemes ...string) *SignOutResult {
	return &SignOutResult{AuthenticationSchemes: schemes, Properties: props}
}
