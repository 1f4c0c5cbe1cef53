package actionresult

import (
	"errors"
	"io"
	"net/http"

	"github.com/resultassert/resultassert/framework"
)

var (
	// ErrNoURLGenerator is returned when a result needs to build a URL from a route and the
	// ActionContext has no URLGenerator.
	ErrNoURLGenerator = errors.New("no URL generator is configured")

	// ErrNoViewEngine is returned when a view result is executed without a ViewEngine.
	ErrNoViewEngine = errors.New("no view engine is configured")

	// ErrNoAuthentication is returned when a sign-in or sign-out result is executed without an
	// AuthenticationService.
	ErrNoAuthentication = errors.New("no authentication service is configured")
)

// URLGenerator builds URLs for named routes and for controller actions.
type URLGenerator interface {
	RouteURL(routeName string, values RouteValues) (string, error)
	ActionURL(actionName, controllerName string, values RouteValues) (string, error)
}

// ViewRequest is everything a ViewEngine is given to render a view.
type ViewRequest struct {
	Name     string
	Partial  bool
	Model    interface{}
	ViewData ViewData
	TempData ViewData
}

// ViewEngine renders named views.
type ViewEngine interface {
	Render(w io.Writer, view ViewRequest) error
}

// AuthenticationService performs the authentication operations that cannot be expressed as a
// plain response: establishing or removing a session, or a scheme-specific challenge.
//
// ChallengeResult and ForbidResult fall back to a basic 401 or 403 response if there is no
// AuthenticationService; SignInResult and SignOutResult require one.
type AuthenticationService interface {
	Challenge(ctx *ActionContext, scheme string, props *AuthenticationProperties) error
	Forbid(ctx *ActionContext, scheme string, props *AuthenticationProperties) error
	SignIn(ctx *ActionContext, scheme string, principal *Principal, props *AuthenticationProperties) error
	SignOut(ctx *ActionContext, scheme string, props *AuthenticationProperties) error
}

// Environment is the configuration shared by all handlers created with Handle. Any field can be
// left empty if the handlers never return results that need it.
type Environment struct {
	URLs   URLGenerator
	Views  ViewEngine
	Auth   AuthenticationService
	Logger framework.Logger
}

// ActionContext is what a Result needs in order to execute.
type ActionContext struct {
	Writer  http.ResponseWriter
	Request *http.Request
	URLs    URLGenerator
	Views   ViewEngine
	Auth    AuthenticationService
	Logger  framework.Logger
}

// NewActionContext creates an ActionContext for one request.
func NewActionContext(env Environment, w http.ResponseWriter, r *http.Request) *ActionContext {
	logger := env.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &ActionContext{
		Writer:  w,
		Request: r,
		URLs:    env.URLs,
		Views:   env.Views,
		Auth:    env.Auth,
		Logger:  logger,
	}
}

// Action is a handler that describes its response as a Result.
type Action func(r *http.Request) Result

// Handle adapts an Action to an http.Handler. A nil Result is treated as an EmptyResult. If the
// result cannot be executed, the error is logged and, if nothing has been written yet, the
// response is a 500 error.
func Handle(env Environment, action Action) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		ctx := NewActionContext(env, tw, r)
		result := action(r)
		if result == nil {
			result = Empty()
		}
		if err := result.ExecuteResult(ctx); err != nil {
			ctx.Logger.Printf("Failed to execute %s for %s %s: %s", result.Kind(), r.Method, r.URL, err)
			if !tw.wroteHeader {
				http.Error(tw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}
	})
}

type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (t *trackingWriter) WriteHeader(statusCode int) {
	t.wroteHeader = true
	t.ResponseWriter.WriteHeader(statusCode)
}

func (t *trackingWriter) Write(data []byte) (int, error) {
	t.wroteHeader = true
	return t.ResponseWriter.Write(data)
}
