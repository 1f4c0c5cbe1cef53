// Package actionresult is a small model of the values a web handler returns to describe its
// response: a closed set of result kinds with fixed field names, a way to execute each one onto
// an http.ResponseWriter, and a way to decode an *http.Response back into the closest kind.
//
// Handlers return a Result instead of writing to the response directly, which lets tests make
// assertions about what a handler decided to do without going through HTTP.
package actionresult

import (
	"io"
	"time"

	"github.com/resultassert/resultassert/framework/opt"
)

// Result is implemented by every result kind in this package and by nothing else.
type Result interface {
	// Kind returns the kind of this result.
	Kind() Kind

	// ExecuteResult writes the response this result describes.
	ExecuteResult(ctx *ActionContext) error

	sealed()
}

// RouteValues are the values used to fill in the variables of a route template. Values that do
// not correspond to a route variable are added to the query string.
type RouteValues map[string]interface{}

// ViewData holds loosely typed values passed from a handler to a view.
type ViewData map[string]interface{}

type EmptyResult struct{}

type StatusCodeResult struct {
	StatusCode int
}

// ObjectResult is a value to be serialized in the response body, with an optional status code.
type ObjectResult struct {
	Value        interface{}
	StatusCode   opt.Maybe[int]
	ContentTypes []string
}

type ContentResult struct {
	Content     string
	ContentType string
	StatusCode  opt.Maybe[int]
}

type JSONResult struct {
	Value       interface{}
	ContentType string
	StatusCode  opt.Maybe[int]
}

type CreatedResult struct {
	Location string
	Value    interface{}
}

type CreatedAtActionResult struct {
	ActionName     string
	ControllerName string
	RouteValues    RouteValues
	Value          interface{}
}

type CreatedAtRouteResult struct {
	RouteName   string
	RouteValues RouteValues
	Value       interface{}
}

type AcceptedResult struct {
	Location string
	Value    interface{}
}

type AcceptedAtActionResult struct {
	ActionName     string
	ControllerName string
	RouteValues    RouteValues
	Value          interface{}
}

type AcceptedAtRouteResult struct {
	RouteName   string
	RouteValues RouteValues
	Value       interface{}
}

type RedirectResult struct {
	URL            string
	Permanent      bool
	PreserveMethod bool
}

// LocalRedirectResult is a redirect that is only allowed to point to a path on the same host.
type LocalRedirectResult struct {
	LocalURL       string
	Permanent      bool
	PreserveMethod bool
}

type RedirectToActionResult struct {
	ActionName     string
	ControllerName string
	Fragment       string
	RouteValues    RouteValues
	Permanent      bool
	PreserveMethod bool
}

type RedirectToRouteResult struct {
	RouteName      string
	Fragment       string
	RouteValues    RouteValues
	Permanent      bool
	PreserveMethod bool
}

// FileResult contains the properties shared by all file results.
type FileResult struct {
	ContentType           string
	FileDownloadName      string
	EntityTag             string
	LastModified          opt.Maybe[time.Time]
	EnableRangeProcessing bool
}

type FileContentResult struct {
	FileResult
	FileContents []byte
}

// FileStreamResult sends the contents of a reader. Range requests are only honored if the
// reader is also an io.Seeker.
type FileStreamResult struct {
	FileResult
	FileStream io.Reader
}

type PhysicalFileResult struct {
	FileResult
	FileName string
}

type ViewResult struct {
	ViewName    string
	ViewData    ViewData
	TempData    ViewData
	Model       interface{}
	StatusCode  opt.Maybe[int]
	ContentType string
}

type PartialViewResult struct {
	ViewName    string
	ViewData    ViewData
	TempData    ViewData
	Model       interface{}
	StatusCode  opt.Maybe[int]
	ContentType string
}

// ChallengeResult asks the client to authenticate with one of the given schemes.
type ChallengeResult struct {
	AuthenticationSchemes []string
	Properties            *AuthenticationProperties
}

// ForbidResult tells the client that it is authenticated but not allowed to do this.
type ForbidResult struct {
	AuthenticationSchemes []string
	Properties            *AuthenticationProperties
}

type SignInResult struct {
	AuthenticationScheme string
	Principal            *Principal
	Properties           *AuthenticationProperties
}

type SignOutResult struct {
	AuthenticationSchemes []string
	Properties            *AuthenticationProperties
}

func (*EmptyResult) Kind() Kind            { return KindEmpty }
func (*StatusCodeResult) Kind() Kind       { return KindStatusCode }
func (*ObjectResult) Kind() Kind           { return KindObject }
func (*ContentResult) Kind() Kind          { return KindContent }
func (*JSONResult) Kind() Kind             { return KindJSON }
func (*CreatedResult) Kind() Kind          { return KindCreated }
func (*CreatedAtActionResult) Kind() Kind  { return KindCreatedAtAction }
func (*CreatedAtRouteResult) Kind() Kind   { return KindCreatedAtRoute }
func (*AcceptedResult) Kind() Kind         { return KindAccepted }
func (*AcceptedAtActionResult) Kind() Kind { return KindAcceptedAtAction }
func (*AcceptedAtRouteResult) Kind() Kind  { return KindAcceptedAtRoute }
func (*RedirectResult) Kind() Kind         { return KindRedirect }
func (*LocalRedirectResult) Kind() Kind    { return KindLocalRedirect }
func (*RedirectToActionResult) Kind() Kind { return KindRedirectToAction }
func (*RedirectToRouteResult) Kind() Kind  { return KindRedirectToRoute }
func (*FileContentResult) Kind() Kind      { return KindFileContent }
func (*FileStreamResult) Kind() Kind       { return KindFileStream }
func (*PhysicalFileResult) Kind() Kind     { return KindPhysicalFile }
func (*ViewResult) Kind() Kind             { return KindView }
func (*PartialViewResult) Kind() Kind      { return KindPartialView }
func (*ChallengeResult) Kind() Kind        { return KindChallenge }
func (*ForbidResult) Kind() Kind           { return KindForbid }
func (*SignInResult) Kind() Kind           { return KindSignIn }
func (*SignOutResult) Kind() Kind          { return KindSignOut }

func (*EmptyResult) sealed()            {}
func (*StatusCodeResult) sealed()       {}
func (*ObjectResult) sealed()           {}
func (*ContentResult) sealed()          {}
func (*JSONResult) sealed()             {}
func (*CreatedResult) sealed()          {}
func (*CreatedAtActionResult) sealed()  {}
func (*CreatedAtRouteResult) sealed()   {}
func (*AcceptedResult) sealed()         {}
func (*AcceptedAtActionResult) sealed() {}
func (*AcceptedAtRouteResult) sealed()  {}
func (*RedirectResult) sealed()         {}
func (*LocalRedirectResult) sealed()    {}
func (*RedirectToActionResult) sealed() {}
func (*RedirectToRouteResult) sealed()  {}
func (*FileContentResult) sealed()      {}
func (*FileStreamResult) sealed()       {}
func (*PhysicalFileResult) sealed()     {}
func (*ViewResult) sealed()             {}
func (*PartialViewResult) sealed()      {}
func (*ChallengeResult) sealed()        {}
func (*ForbidResult) sealed()           {}
func (*SignInResult) sealed()           {}
func (*SignOutResult) sealed()          {}
